package repository

import "github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"

// DefaultCatalog returns the menu the storefront ships with. The admin area
// can edit or remove any of these entries at runtime.
func DefaultCatalog() []entities.MenuItem {
	return []entities.MenuItem{
		{
			ID:          "1",
			Name:        "X-Burger Clássico",
			Description: "Hambúrguer artesanal, queijo, alface, tomate e molho especial",
			Price:       18.90,
			Category:    "Hambúrgueres",
			Image:       "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=400",
			Available:   true,
		},
		{
			ID:          "2",
			Name:        "X-Bacon",
			Description: "Hambúrguer artesanal, bacon crocante, queijo e molho barbecue",
			Price:       22.90,
			Category:    "Hambúrgueres",
			Image:       "https://images.pexels.com/photos/1633578/pexels-photo-1633578.jpeg?auto=compress&cs=tinysrgb&w=400",
			Available:   true,
		},
		{
			ID:          "3",
			Name:        "Batata Frita",
			Description: "Porção de batata frita crocante temperada",
			Price:       12.90,
			Category:    "Acompanhamentos",
			Image:       "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg?auto=compress&cs=tinysrgb&w=400",
			Available:   true,
		},
		{
			ID:          "4",
			Name:        "Refrigerante Lata",
			Description: "Coca-Cola, Guaraná ou Fanta - 350ml",
			Price:       5.90,
			Category:    "Bebidas",
			Image:       "https://images.pexels.com/photos/2775860/pexels-photo-2775860.jpeg?auto=compress&cs=tinysrgb&w=400",
			Available:   true,
		},
	}
}

// DefaultFooterConfig returns the contact block shown until the admin edits it.
func DefaultFooterConfig() entities.FooterConfig {
	return entities.FooterConfig{
		Enabled:     true,
		CompanyName: "LancheExpress",
		Description: "Lanches artesanais feitos com ingredientes frescos e muito amor. Sabor que você nunca esquece!",
		Address:     "Rua das Flores, 123 - Centro, São Paulo - SP",
		Phone:       "(11) 99999-9999",
		Email:       "contato@lancheexpress.com",
		Hours:       "Segunda a Domingo: 18h às 23h",
		WhatsApp:    "(11) 99999-9999",
		Instagram:   "@lancheexpress",
		Facebook:    "LancheExpress",
	}
}
