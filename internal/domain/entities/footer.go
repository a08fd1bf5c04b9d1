package entities

// FooterConfig is the singleton block of business contact data shown by the
// storefront footer. The admin footer editor replaces it wholesale.

type FooterConfig struct {
	Enabled     bool   `json:"enabled"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Hours       string `json:"hours"`
	WhatsApp    string `json:"whatsapp"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
}
