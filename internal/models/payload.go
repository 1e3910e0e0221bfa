package models

import "slices"

// ItemType is the tag of a content item. It selects the renderer on the
// front-end and the payload variant here.
type ItemType string

const (
	ItemHero        ItemType = "HERO"
	ItemTextImage   ItemType = "TEXT_IMAGE"
	ItemStats       ItemType = "STATS"
	ItemSummary     ItemType = "SUMMARY"
	ItemTimeline    ItemType = "TIMELINE"
	ItemCover       ItemType = "COVER"
	ItemValues      ItemType = "VALUES"
	ItemGridCards   ItemType = "GRID_CARDS"
	ItemChart       ItemType = "CHART"
	ItemMateriality ItemType = "MATERIALITY"
	ItemContact     ItemType = "CONTACT"
)

var itemTypes = []ItemType{
	ItemHero, ItemTextImage, ItemStats, ItemSummary, ItemTimeline, ItemCover,
	ItemValues, ItemGridCards, ItemChart, ItemMateriality, ItemContact,
}

// ItemTypes lists every known item type in display order.
func ItemTypes() []ItemType {
	return slices.Clone(itemTypes)
}

func (t ItemType) Valid() bool {
	return slices.Contains(itemTypes, t)
}

// Payload is the type-specific part of a content item. The set of
// implementations is closed; the item type is always Payload.Type().
type Payload interface {
	Type() ItemType
	clone() Payload
}

// NewPayload returns the empty payload for t.
func NewPayload(t ItemType) (Payload, bool) {
	switch t {
	case ItemHero:
		return Hero{}, true
	case ItemTextImage:
		return TextImage{}, true
	case ItemCover:
		return Cover{}, true
	case ItemStats:
		return Stats{}, true
	case ItemSummary:
		return Summary{}, true
	case ItemTimeline:
		return Timeline{}, true
	case ItemValues:
		return Values{}, true
	case ItemGridCards:
		return GridCards{}, true
	case ItemChart:
		return Chart{}, true
	case ItemMateriality:
		return Materiality{}, true
	case ItemContact:
		return Contact{}, true
	}
	return nil, false
}

// --- Variants without a payload ---

type Hero struct{}

func (Hero) Type() ItemType   { return ItemHero }
func (p Hero) clone() Payload { return p }

type TextImage struct{}

func (TextImage) Type() ItemType   { return ItemTextImage }
func (p TextImage) clone() Payload { return p }

type Cover struct{}

func (Cover) Type() ItemType   { return ItemCover }
func (p Cover) clone() Payload { return p }

// Unrecognized keeps the tag of an item whose type this build does not know,
// so a stored document with newer block types survives a read-modify-write.
// Its payload arrays are not preserved.
type Unrecognized struct {
	Tag ItemType
}

func (p Unrecognized) Type() ItemType { return p.Tag }
func (p Unrecognized) clone() Payload { return p }

// --- Variants with a payload ---

type StatItem struct {
	Label       string `firestore:"label" json:"label"`
	Value       string `firestore:"value" json:"value"`
	Icon        string `firestore:"icon,omitempty" json:"icon,omitempty"`
	Description string `firestore:"description,omitempty" json:"description,omitempty"`
}

type Stats struct {
	Items []StatItem
}

func (Stats) Type() ItemType   { return ItemStats }
func (p Stats) clone() Payload { return Stats{Items: slices.Clone(p.Items)} }

type SummaryItem struct {
	Num   string `firestore:"num" json:"num"`
	Label string `firestore:"label" json:"label"`
	Desc  string `firestore:"desc" json:"desc"`
}

type Summary struct {
	Items []SummaryItem
}

func (Summary) Type() ItemType   { return ItemSummary }
func (p Summary) clone() Payload { return Summary{Items: slices.Clone(p.Items)} }

type TimelineEvent struct {
	Year        string `firestore:"year" json:"year"`
	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description,omitempty" json:"description,omitempty"`
}

type Timeline struct {
	Events []TimelineEvent
}

func (Timeline) Type() ItemType   { return ItemTimeline }
func (p Timeline) clone() Payload { return Timeline{Events: slices.Clone(p.Events)} }

type ValueItem struct {
	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description" json:"description"`
	Icon        string `firestore:"icon,omitempty" json:"icon,omitempty"`
}

type Values struct {
	Items []ValueItem
}

func (Values) Type() ItemType   { return ItemValues }
func (p Values) clone() Payload { return Values{Items: slices.Clone(p.Items)} }

type ProductItem struct {
	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description" json:"description"`
	ImageURL    string `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

type GridCards struct {
	Products []ProductItem
}

func (GridCards) Type() ItemType   { return ItemGridCards }
func (p GridCards) clone() Payload { return GridCards{Products: slices.Clone(p.Products)} }

type ChartDataPoint struct {
	Name   string   `firestore:"name" json:"name"`
	Value1 float64  `firestore:"value1" json:"value1"`
	Value2 *float64 `firestore:"value2,omitempty" json:"value2,omitempty"`
}

type Chart struct {
	Data []ChartDataPoint
}

func (Chart) Type() ItemType { return ItemChart }

func (p Chart) clone() Payload {
	if p.Data == nil {
		return Chart{}
	}
	data := make([]ChartDataPoint, len(p.Data))
	for i, d := range p.Data {
		data[i] = d
		if d.Value2 != nil {
			v := *d.Value2
			data[i].Value2 = &v
		}
	}
	return Chart{Data: data}
}

type MaterialityItem struct {
	Category string   `firestore:"category" json:"category"`
	Color    string   `firestore:"color,omitempty" json:"color,omitempty"` // green, blue, orange
	Topics   []string `firestore:"topics" json:"topics"`
}

type Materiality struct {
	Items []MaterialityItem
}

func (Materiality) Type() ItemType { return ItemMateriality }

func (p Materiality) clone() Payload {
	if p.Items == nil {
		return Materiality{}
	}
	items := make([]MaterialityItem, len(p.Items))
	for i, m := range p.Items {
		items[i] = m
		items[i].Topics = slices.Clone(m.Topics)
	}
	return Materiality{Items: items}
}

type ContactLink struct {
	Type  string `firestore:"type" json:"type"` // email, phone, whatsapp
	Label string `firestore:"label" json:"label"`
	Value string `firestore:"value" json:"value"`
}

type SocialLink struct {
	Platform string `firestore:"platform" json:"platform"` // instagram, facebook, linkedin, youtube
	URL      string `firestore:"url" json:"url"`
}

type Contact struct {
	Contacts []ContactLink
	Social   []SocialLink
}

func (Contact) Type() ItemType { return ItemContact }

func (p Contact) clone() Payload {
	return Contact{Contacts: slices.Clone(p.Contacts), Social: slices.Clone(p.Social)}
}
