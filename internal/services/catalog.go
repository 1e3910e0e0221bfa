package services

import (
	"github.com/GregMSThompson/report-cms/internal/dto"
	"github.com/GregMSThompson/report-cms/internal/models"
)

var itemTypeLabels = map[models.ItemType]string{
	models.ItemHero:        "Capa / Destaque (Com máscara de folha)",
	models.ItemTextImage:   "Texto com Imagem Lateral",
	models.ItemStats:       "Painel de Estatísticas (Verde)",
	models.ItemSummary:     "Sumário Numérico",
	models.ItemTimeline:    "Linha do Tempo (Anos)",
	models.ItemCover:       "Capa Principal do Site",
	models.ItemValues:      "Grid de Valores/Ícones",
	models.ItemGridCards:   "Grid de Cards com Imagem (Produtos)",
	models.ItemChart:       "Gráfico de Barras",
	models.ItemMateriality: "Matriz de Materialidade",
	models.ItemContact:     "Contato",
}

// ItemTypeOptions lists the block types offered by the editor, with their
// display labels.
func ItemTypeOptions() []dto.ItemTypeOption {
	types := models.ItemTypes()
	out := make([]dto.ItemTypeOption, 0, len(types))
	for _, t := range types {
		out = append(out, dto.ItemTypeOption{Type: t, Label: itemTypeLabels[t]})
	}
	return out
}
