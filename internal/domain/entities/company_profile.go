package entities

// DefaultCompanyName is used when no profile was ever saved.
const DefaultCompanyName = "OS PRO"

// CompanyProfile is the singleton branding record printed on documents
// and share messages. Logo, when present, is a base64 data URL.
type CompanyProfile struct {
	Name    string `json:"name"`
	Logo    string `json:"logo,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{Name: DefaultCompanyName}
}
