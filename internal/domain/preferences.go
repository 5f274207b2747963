package domain

type Branding struct {
	CompanyName  string `json:"companyName"`
	LogoURL      string `json:"logoUrl,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	TaxID        string `json:"taxId,omitempty"`
	Address      string `json:"address,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

func DefaultBranding() Branding {
	return Branding{CompanyName: "MaestrIA", PrimaryColor: "#4f46e5"}
}

type Language string

const (
	LanguagePortuguese Language = "pt"
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
)

func (l Language) Valid() bool {
	switch l {
	case LanguagePortuguese, LanguageEnglish, LanguageSpanish:
		return true
	}
	return false
}

const DefaultView = "dashboard"
