package models

type FontTheme string

const (
	FontSans  FontTheme = "sans"
	FontSerif FontTheme = "serif"
)

// GlobalSettings is the presentation configuration of the report (branding,
// header and footer text). It holds no content. Colors are hex strings.
type GlobalSettings struct {
	CompanyName     string    `firestore:"companyName" json:"companyName"`
	LogoURL         string    `firestore:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	PrimaryColor    string    `firestore:"primaryColor" json:"primaryColor"`
	DarkColor       string    `firestore:"darkColor" json:"darkColor"`
	ReportTitle     string    `firestore:"reportTitle,omitempty" json:"reportTitle,omitempty"`
	ReportSubtitle  string    `firestore:"reportSubtitle,omitempty" json:"reportSubtitle,omitempty"`
	FooterText      string    `firestore:"footerText,omitempty" json:"footerText,omitempty"`
	FooterCopyright string    `firestore:"footerCopyright,omitempty" json:"footerCopyright,omitempty"`
	FontTheme       FontTheme `firestore:"fontTheme,omitempty" json:"fontTheme,omitempty"`
}

// DefaultSettings returns the settings of the seed document. Used to back-fill
// documents written before settings existed.
func DefaultSettings() GlobalSettings {
	return *seed.Settings
}
