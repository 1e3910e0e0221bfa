package models

import "encoding/json"

type BgColor string

const (
	BgBlue  BgColor = "blue"
	BgWhite BgColor = "white"
	BgGreen BgColor = "green"
)

type Layout string

const (
	LayoutLeft   Layout = "left"
	LayoutRight  Layout = "right"
	LayoutCenter Layout = "center"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// ContentItem is one block of a report section. Fields shared by every block
// live on the struct; the type-specific part is the Payload variant.
type ContentItem struct {
	ID                  string
	Title               string
	Subtitle            string
	Body                string
	ImageURL            string
	ImageCaption        string
	VideoURL            string
	MediaType           MediaType
	ImageOverlayOpacity *int // 0-100
	ImagePosition       string
	BgColor             BgColor
	Layout              Layout
	Payload             Payload
}

// Type returns the item's tag, or "" when no payload is set.
func (c ContentItem) Type() ItemType {
	if c.Payload == nil {
		return ""
	}
	return c.Payload.Type()
}

// Clone returns a deep copy of the item.
func (c ContentItem) Clone() ContentItem {
	out := c
	if c.ImageOverlayOpacity != nil {
		v := *c.ImageOverlayOpacity
		out.ImageOverlayOpacity = &v
	}
	if c.Payload != nil {
		out.Payload = c.Payload.clone()
	}
	return out
}

func (c ContentItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewItemRecord(c))
}

func (c *ContentItem) UnmarshalJSON(b []byte) error {
	var rec ItemRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	*c = rec.Item()
	return nil
}
