package response

import "github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"

type FooterConfigResponse struct {
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

func FromFooterConfig(c entities.FooterConfig) FooterConfigResponse {
	return FooterConfigResponse{
		Enabled:     c.Enabled,
		CompanyName: c.CompanyName,
		Description: c.Description,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		Hours:       c.Hours,
		WhatsApp:    c.WhatsApp,
		Instagram:   c.Instagram,
		Facebook:    c.Facebook,
	}
}
