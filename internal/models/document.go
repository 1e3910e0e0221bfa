package models

import "encoding/json"

// AppData is the single persisted document of a deployment: the report's
// global settings and its ordered sections.
type AppData struct {
	Settings *GlobalSettings
	Sections []ReportSection
}

// ReportSection is one page of the report. ID is derived from the title at
// creation and never changes; MenuTitle is the editable label.
type ReportSection struct {
	ID        string        `json:"id"`
	MenuTitle string        `json:"menuTitle"`
	Items     []ContentItem `json:"items"`
}

// Clone returns a deep copy of the document.
func (d *AppData) Clone() *AppData {
	if d == nil {
		return nil
	}
	out := &AppData{Sections: make([]ReportSection, len(d.Sections))}
	if d.Settings != nil {
		s := *d.Settings
		out.Settings = &s
	}
	for i, s := range d.Sections {
		out.Sections[i] = s.Clone()
	}
	return out
}

func (s ReportSection) Clone() ReportSection {
	out := ReportSection{ID: s.ID, MenuTitle: s.MenuTitle, Items: make([]ContentItem, len(s.Items))}
	for i, it := range s.Items {
		out.Items[i] = it.Clone()
	}
	return out
}

// SectionIndex returns the position of the section with the given id, or -1.
func (d *AppData) SectionIndex(id string) int {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// ItemIndex returns the position of the item with the given id, or -1.
func (s *ReportSection) ItemIndex(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// HasItemID reports whether any section holds an item with the given id.
func (d *AppData) HasItemID(id string) bool {
	for i := range d.Sections {
		if d.Sections[i].ItemIndex(id) >= 0 {
			return true
		}
	}
	return false
}

// ItemCount is the number of blocks across all sections.
func (d *AppData) ItemCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Items)
	}
	return n
}

func (d AppData) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewDocumentRecord(&d))
}

func (d *AppData) UnmarshalJSON(b []byte) error {
	var rec DocumentRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	*d = *rec.AppData()
	return nil
}
