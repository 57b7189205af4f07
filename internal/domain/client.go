// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Benefícios disponíveis para o programa de fidelidade. A lista é fechada:
// o cadastro só aceita benefícios presentes aqui.
const (
	BenefitProductDiscount = "Desconto de 3% a 8% em produtos"
	BenefitFreeShipping    = "Frete grátis para entregas"
	BenefitLoyaltyPoints   = "Programa de pontuação"
	BenefitTechSupport     = "Assistência técnica para piscinas e produtos"
	BenefitPriorityService = "Atendimento com prioridade"
)

// AvailableBenefits lista os benefícios na ordem de exibição do cadastro.
var AvailableBenefits = []string{
	BenefitProductDiscount,
	BenefitFreeShipping,
	BenefitLoyaltyPoints,
	BenefitTechSupport,
	BenefitPriorityService,
}

// RequiredBenefits é a quantidade exata de benefícios por cliente.
const RequiredBenefits = 3

type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Neighborhood string    `json:"neighborhood"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Phone        string    `json:"phone"`
	CNPJ         string    `json:"cnpj"`
	Benefits     []string  `json:"benefits"`
	RegisteredAt time.Time `json:"registered_at"`
}

// HasBenefit verifica se o cliente possui um benefício específico.
func (c *Client) HasBenefit(benefit string) bool {
	for _, b := range c.Benefits {
		if b == benefit {
			return true
		}
	}
	return false
}

type UpdateClientRequest struct {
	ID           string    `json:"id"`
	Name         *string   `json:"name"`
	City         *string   `json:"city"`
	Neighborhood *string   `json:"neighborhood"`
	Street       *string   `json:"street"`
	Number       *string   `json:"number"`
	Phone        *string   `json:"phone"`
	CNPJ         *string   `json:"cnpj"`
	Benefits     *[]string `json:"benefits"`
}
