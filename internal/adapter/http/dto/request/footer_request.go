package request

import "github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"

// FooterConfigRequest replaces the footer singleton wholesale; there is no
// per-field patch.
type FooterConfigRequest struct {
	Enabled     bool   `json:"enabled"`
	CompanyName string `json:"company_name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Hours       string `json:"hours"`
	WhatsApp    string `json:"whatsapp"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
}

func (r FooterConfigRequest) ToEntity() entities.FooterConfig {
	return entities.FooterConfig{
		Enabled:     r.Enabled,
		CompanyName: r.CompanyName,
		Description: r.Description,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		Hours:       r.Hours,
		WhatsApp:    r.WhatsApp,
		Instagram:   r.Instagram,
		Facebook:    r.Facebook,
	}
}
