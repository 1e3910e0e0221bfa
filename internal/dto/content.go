package dto

import (
	"time"

	"github.com/GregMSThompson/report-cms/internal/models"
)

type TitleRequest struct {
	Title string `json:"title"`
}

type ItemTypeRequest struct {
	Type models.ItemType `json:"type"`
}

type MoveRequest struct {
	Direction models.Direction `json:"direction"`
}

// ChangedResponse reports whether a mutation found its target. A false value
// means nothing was written.
type ChangedResponse struct {
	Changed bool `json:"changed"`
}

// CreatedResponse carries the id of a new section or item. Changed is false,
// and ID empty, when the parent was not found.
type CreatedResponse struct {
	ID      string `json:"id,omitempty"`
	Changed bool   `json:"changed"`
}

type SettingsResponse struct {
	Settings       models.GlobalSettings `json:"settings"`
	ReloadRequired bool                  `json:"reloadRequired"`
}

type Overview struct {
	Pages  int `json:"pages"`
	Blocks int `json:"blocks"`
}

type SyncStatus struct {
	State     models.SyncState `json:"state"`
	LastError string           `json:"lastError,omitempty"`
	LastSaved *time.Time       `json:"lastSaved,omitempty"`
}

type ItemTypeOption struct {
	Type  models.ItemType `json:"type"`
	Label string          `json:"label"`
}
