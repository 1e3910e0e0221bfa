package models

// The record types are the persisted shape of the document: one flat object
// per item with a type tag and the payload arrays as optional siblings. The
// same records back the JSON encoding and the Firestore encoding, so documents
// written by the earlier front-end-only version load unchanged.

type ItemRecord struct {
	ID                  string    `firestore:"id" json:"id"`
	Type                ItemType  `firestore:"type" json:"type"`
	Title               string    `firestore:"title,omitempty" json:"title,omitempty"`
	Subtitle            string    `firestore:"subtitle,omitempty" json:"subtitle,omitempty"`
	Body                string    `firestore:"body,omitempty" json:"body,omitempty"`
	ImageURL            string    `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ImageCaption        string    `firestore:"imageCaption,omitempty" json:"imageCaption,omitempty"`
	VideoURL            string    `firestore:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	MediaType           MediaType `firestore:"mediaType,omitempty" json:"mediaType,omitempty"`
	ImageOverlayOpacity *int      `firestore:"imageOverlayOpacity,omitempty" json:"imageOverlayOpacity,omitempty"`
	ImagePosition       string    `firestore:"imagePosition,omitempty" json:"imagePosition,omitempty"`
	BgColor             BgColor   `firestore:"bgColor,omitempty" json:"bgColor,omitempty"`
	Layout              Layout    `firestore:"layout,omitempty" json:"layout,omitempty"`

	Stats            []StatItem        `firestore:"stats,omitempty" json:"stats,omitempty"`
	TimelineEvents   []TimelineEvent   `firestore:"timelineEvents,omitempty" json:"timelineEvents,omitempty"`
	Values           []ValueItem       `firestore:"values,omitempty" json:"values,omitempty"`
	Products         []ProductItem     `firestore:"products,omitempty" json:"products,omitempty"`
	ChartData        []ChartDataPoint  `firestore:"chartData,omitempty" json:"chartData,omitempty"`
	SummaryItems     []SummaryItem     `firestore:"summaryItems,omitempty" json:"summaryItems,omitempty"`
	MaterialityItems []MaterialityItem `firestore:"materialityItems,omitempty" json:"materialityItems,omitempty"`
	SocialLinks      []SocialLink      `firestore:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	ContactLinks     []ContactLink     `firestore:"contactLinks,omitempty" json:"contactLinks,omitempty"`
}

type SectionRecord struct {
	ID        string       `firestore:"id" json:"id"`
	MenuTitle string       `firestore:"menuTitle" json:"menuTitle"`
	Items     []ItemRecord `firestore:"items" json:"items"`
}

// DocumentRecord is the stored AppData. Settings is nil when the stored
// document predates global settings.
type DocumentRecord struct {
	Settings *GlobalSettings `firestore:"settings,omitempty" json:"settings,omitempty"`
	Sections []SectionRecord `firestore:"sections" json:"sections"`
}

func NewItemRecord(c ContentItem) ItemRecord {
	rec := ItemRecord{
		ID:                  c.ID,
		Type:                c.Type(),
		Title:               c.Title,
		Subtitle:            c.Subtitle,
		Body:                c.Body,
		ImageURL:            c.ImageURL,
		ImageCaption:        c.ImageCaption,
		VideoURL:            c.VideoURL,
		MediaType:           c.MediaType,
		ImageOverlayOpacity: c.ImageOverlayOpacity,
		ImagePosition:       c.ImagePosition,
		BgColor:             c.BgColor,
		Layout:              c.Layout,
	}
	switch p := c.Payload.(type) {
	case Stats:
		rec.Stats = p.Items
	case Summary:
		rec.SummaryItems = p.Items
	case Timeline:
		rec.TimelineEvents = p.Events
	case Values:
		rec.Values = p.Items
	case GridCards:
		rec.Products = p.Products
	case Chart:
		rec.ChartData = p.Data
	case Materiality:
		rec.MaterialityItems = p.Items
	case Contact:
		rec.ContactLinks = p.Contacts
		rec.SocialLinks = p.Social
	}
	return rec
}

// Item converts the record into its variant. Only the payload arrays that
// belong to the record's type are kept.
func (r ItemRecord) Item() ContentItem {
	c := ContentItem{
		ID:                  r.ID,
		Title:               r.Title,
		Subtitle:            r.Subtitle,
		Body:                r.Body,
		ImageURL:            r.ImageURL,
		ImageCaption:        r.ImageCaption,
		VideoURL:            r.VideoURL,
		MediaType:           r.MediaType,
		ImageOverlayOpacity: r.ImageOverlayOpacity,
		ImagePosition:       r.ImagePosition,
		BgColor:             r.BgColor,
		Layout:              r.Layout,
	}
	switch r.Type {
	case ItemHero:
		c.Payload = Hero{}
	case ItemTextImage:
		c.Payload = TextImage{}
	case ItemCover:
		c.Payload = Cover{}
	case ItemStats:
		c.Payload = Stats{Items: r.Stats}
	case ItemSummary:
		c.Payload = Summary{Items: r.SummaryItems}
	case ItemTimeline:
		c.Payload = Timeline{Events: r.TimelineEvents}
	case ItemValues:
		c.Payload = Values{Items: r.Values}
	case ItemGridCards:
		c.Payload = GridCards{Products: r.Products}
	case ItemChart:
		c.Payload = Chart{Data: r.ChartData}
	case ItemMateriality:
		c.Payload = Materiality{Items: r.MaterialityItems}
	case ItemContact:
		c.Payload = Contact{Contacts: r.ContactLinks, Social: r.SocialLinks}
	default:
		c.Payload = Unrecognized{Tag: r.Type}
	}
	return c
}

func NewDocumentRecord(d *AppData) DocumentRecord {
	rec := DocumentRecord{
		Settings: d.Settings,
		Sections: make([]SectionRecord, 0, len(d.Sections)),
	}
	for _, s := range d.Sections {
		sr := SectionRecord{
			ID:        s.ID,
			MenuTitle: s.MenuTitle,
			Items:     make([]ItemRecord, 0, len(s.Items)),
		}
		for _, it := range s.Items {
			sr.Items = append(sr.Items, NewItemRecord(it))
		}
		rec.Sections = append(rec.Sections, sr)
	}
	return rec
}

func (r DocumentRecord) AppData() *AppData {
	d := &AppData{
		Settings: r.Settings,
		Sections: make([]ReportSection, 0, len(r.Sections)),
	}
	for _, sr := range r.Sections {
		s := ReportSection{
			ID:        sr.ID,
			MenuTitle: sr.MenuTitle,
			Items:     make([]ContentItem, 0, len(sr.Items)),
		}
		for _, ir := range sr.Items {
			s.Items = append(s.Items, ir.Item())
		}
		d.Sections = append(d.Sections, s)
	}
	return d
}
