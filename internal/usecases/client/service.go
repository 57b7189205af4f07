// Package client implementa o cadastro de clientes do programa de
// fidelidade: criação, consulta, busca e edição. Clientes nunca são
// removidos.
package client

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ecoclean/fidelidade-api/infrastructure/repository"
	"github.com/ecoclean/fidelidade-api/internal/domain"
	"github.com/ecoclean/fidelidade-api/pkg/apiErrors"
	"github.com/ecoclean/fidelidade-api/pkg/utils"
)

type ClientService interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	GetClient(clientID string) (*domain.Client, error)
	GetClientByName(name string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
	SearchClients(term string) ([]*domain.Client, error)
	UpdateClient(request *domain.UpdateClientRequest) (*domain.Client, error)
}

type Service struct {
	clientRepository repository.ClientRepository
}

func NewService(clientRepository repository.ClientRepository) ClientService {
	return &Service{
		clientRepository: clientRepository,
	}
}

func (s *Service) CreateClient(client *domain.Client) (*domain.Client, error) {
	if err := validateRequiredFields(client); err != nil {
		return nil, err
	}

	if err := validateBenefits(client.Benefits); err != nil {
		return nil, err
	}

	clientID, err := utils.GenerateID()
	if err != nil {
		return nil, NewClientError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para cliente")
	}
	client.ID = clientID

	created, err := s.clientRepository.Create(client)
	if err != nil {
		if err == repository.ErrDuplicateCNPJ {
			return nil, NewClientError(ErrDuplicateCNPJ, apiErrors.ErrDuplicateCNPJ, "CNPJ já cadastrado")
		}

		logrus.Error("Error creating client on the repository:", err)
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar cliente no banco de dados")
	}

	return created, nil
}

func (s *Service) GetClient(clientID string) (*domain.Client, error) {
	if clientID == "" {
		return nil, NewClientError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido")
	}

	client, err := s.clientRepository.GetByID(clientID)
	if err != nil {
		logrus.Error("Error getting client by id on the repository:", err)
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente no banco de dados")
	}

	if client == nil {
		return nil, NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrClientNotFound, clientID, "Cliente não encontrado")
	}

	return client, nil
}

// GetClientByName resolve um cliente pelo nome exato, sem diferenciar
// maiúsculas. Atende o fluxo de compra por QR Code.
func (s *Service) GetClientByName(name string) (*domain.Client, error) {
	if name == "" {
		return nil, NewClientError(ErrMissingFields, apiErrors.ErrMissingRequiredData, "Nome do cliente não fornecido")
	}

	client, err := s.clientRepository.GetByName(name)
	if err != nil {
		logrus.Error("Error getting client by name on the repository:", err)
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente no banco de dados")
	}

	if client == nil {
		return nil, NewClientError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado")
	}

	return client, nil
}

func (s *Service) ListClients() ([]*domain.Client, error) {
	clients, err := s.clientRepository.List()
	if err != nil {
		logrus.Error("Error listing clients on the repository:", err)
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes no banco de dados")
	}

	return clients, nil
}

// SearchClients filtra a lista por substring do nome (sem diferenciar
// maiúsculas) ou por substring dos dígitos do CNPJ. Termo vazio devolve
// a lista completa.
func (s *Service) SearchClients(term string) ([]*domain.Client, error) {
	clients, err := s.ListClients()
	if err != nil {
		return nil, err
	}

	if term == "" {
		return clients, nil
	}

	lowered := strings.ToLower(term)

	matched := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), lowered) || strings.Contains(c.CNPJ, term) {
			matched = append(matched, c)
		}
	}

	return matched, nil
}

func (s *Service) UpdateClient(request *domain.UpdateClientRequest) (*domain.Client, error) {
	if request.ID == "" {
		return nil, NewClientError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido")
	}

	client, err := s.clientRepository.GetByID(request.ID)
	if err != nil {
		logrus.Error("Error getting client by id on the repository:", err)
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente no banco de dados")
	}

	if client == nil {
		return nil, NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrClientNotFound, request.ID, "Cliente não encontrado")
	}

	applyUpdate(client, request)

	if err := validateRequiredFields(client); err != nil {
		return nil, err
	}

	if err := validateBenefits(client.Benefits); err != nil {
		return nil, err
	}

	if err := s.clientRepository.Update(client); err != nil {
		if err == repository.ErrDuplicateCNPJ {
			return nil, NewClientErrorWithID(ErrDuplicateCNPJ, apiErrors.ErrDuplicateCNPJ, request.ID, "CNPJ já cadastrado")
		}

		logrus.Error("Error updating client on the repository:", err)
		return nil, NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao atualizar cliente no banco de dados")
	}

	return client, nil
}

func applyUpdate(client *domain.Client, request *domain.UpdateClientRequest) {
	if request.Name != nil {
		client.Name = *request.Name
	}
	if request.City != nil {
		client.City = *request.City
	}
	if request.Neighborhood != nil {
		client.Neighborhood = *request.Neighborhood
	}
	if request.Street != nil {
		client.Street = *request.Street
	}
	if request.Number != nil {
		client.Number = *request.Number
	}
	if request.Phone != nil {
		client.Phone = *request.Phone
	}
	if request.CNPJ != nil {
		client.CNPJ = *request.CNPJ
	}
	if request.Benefits != nil {
		client.Benefits = *request.Benefits
	}
}

func validateRequiredFields(client *domain.Client) error {
	if client.Name == "" || client.City == "" || client.Neighborhood == "" ||
		client.Street == "" || client.Number == "" || client.Phone == "" || client.CNPJ == "" {
		return NewClientError(ErrMissingFields, apiErrors.ErrMissingRequiredData,
			"Nome, cidade, bairro, rua, número, telefone e CNPJ são obrigatórios")
	}
	return nil
}

// validateBenefits exige exatamente três benefícios, todos distintos e
// pertencentes à lista fechada de benefícios disponíveis.
func validateBenefits(benefits []string) error {
	if len(benefits) != domain.RequiredBenefits {
		return NewClientError(ErrInvalidBenefits, apiErrors.ErrInvalidBenefits,
			"Devem ser selecionados exatamente 3 benefícios")
	}

	seen := make(map[string]struct{}, len(benefits))
	for _, benefit := range benefits {
		if !isAvailableBenefit(benefit) {
			return NewClientError(ErrInvalidBenefits, apiErrors.ErrInvalidBenefits,
				"Benefício não reconhecido: "+benefit)
		}

		if _, duplicated := seen[benefit]; duplicated {
			return NewClientError(ErrInvalidBenefits, apiErrors.ErrInvalidBenefits,
				"Benefícios não podem se repetir")
		}
		seen[benefit] = struct{}{}
	}

	return nil
}

func isAvailableBenefit(benefit string) bool {
	for _, available := range domain.AvailableBenefits {
		if benefit == available {
			return true
		}
	}
	return false
}
