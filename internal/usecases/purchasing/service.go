// Package purchasing orquestra o registro de compras: valida a seleção
// de cliente e o valor informado, grava no livro de compras e monta o
// preview com a sugestão de desconto.
package purchasing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ecoclean/fidelidade-api/infrastructure/repository"
	"github.com/ecoclean/fidelidade-api/internal/domain"
	"github.com/ecoclean/fidelidade-api/internal/usecases/discounting"
	"github.com/ecoclean/fidelidade-api/pkg/apiErrors"
	"github.com/ecoclean/fidelidade-api/pkg/money"
	"github.com/ecoclean/fidelidade-api/pkg/utils"
)

// defaultLatestLimit é a quantidade de compras exibida na tela inicial.
const defaultLatestLimit = 10

type PurchaseService interface {
	RegisterPurchase(request *domain.CreatePurchaseRequest) (*domain.CreatePurchaseResponse, error)
	PreviewPurchase(request *domain.PreviewPurchaseRequest) (*domain.PreviewPurchaseResponse, error)
	ListLatestPurchases(limit uint64) ([]*domain.Purchase, error)
	ListPurchasesByClient(clientName string, startDate, endDate *time.Time) ([]*domain.Purchase, error)
}

type Service struct {
	purchaseRepository repository.PurchaseRepository
	clientRepository   repository.ClientRepository
	quoter             discounting.Quoter
}

func NewService(
	purchaseRepository repository.PurchaseRepository,
	clientRepository repository.ClientRepository,
	quoter discounting.Quoter,
) PurchaseService {
	return &Service{
		purchaseRepository: purchaseRepository,
		clientRepository:   clientRepository,
		quoter:             quoter,
	}
}

// RegisterPurchase grava uma compra no livro. As pré-condições são
// verificadas em ordem e rejeitadas antes de qualquer acesso ao banco:
// primeiro a seleção do cliente, depois o valor. Há exatamente uma
// tentativa de escrita por submissão; falha do banco devolve a mensagem
// do repositório e o chamador pode reenviar sem perder os dados.
func (s *Service) RegisterPurchase(request *domain.CreatePurchaseRequest) (*domain.CreatePurchaseResponse, error) {
	if request.ClientName == "" || request.ClientCNPJ == "" {
		return nil, NewPurchaseError(ErrNoClientSelected, apiErrors.ErrMissingRequiredData, "Selecione um cliente")
	}

	if request.Amount == "" {
		return nil, NewPurchaseError(ErrNoAmountEntered, apiErrors.ErrMissingRequiredData, "Informe o valor da compra")
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return nil, NewPurchaseError(ErrInvalidAmount, apiErrors.ErrInvalidFormat, "Valor da compra inválido")
	}

	if amount.IsNegative() {
		return nil, NewPurchaseError(ErrInvalidAmount, apiErrors.ErrInvalidFormat, "Valor da compra não pode ser negativo")
	}

	purchaseID, err := utils.GenerateID()
	if err != nil {
		return nil, NewPurchaseError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para compra")
	}

	purchase := &domain.Purchase{
		ID:         purchaseID,
		ClientName: request.ClientName,
		ClientCNPJ: request.ClientCNPJ,
		Amount:     amount,
	}

	created, err := s.purchaseRepository.Create(purchase)
	if err != nil {
		logrus.Error("Error creating purchase on the repository:", err)
		return nil, NewPurchaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &domain.CreatePurchaseResponse{
		Message:  "Compra registrada com sucesso",
		Purchase: created,
	}, nil
}

// PreviewPurchase recalcula a exibição e o valor canônico a partir do
// buffer bruto do campo de valor e, para clientes com o benefício de
// desconto, anexa a sugestão de preço. Buffer sem dígitos significa
// "nenhum valor informado": o preview volta vazio e sem sugestão.
func (s *Service) PreviewPurchase(request *domain.PreviewPurchaseRequest) (*domain.PreviewPurchaseResponse, error) {
	if request.ClientID == "" {
		return nil, NewPurchaseError(ErrNoClientSelected, apiErrors.ErrMissingRequiredData, "Selecione um cliente")
	}

	client, err := s.clientRepository.GetByID(request.ClientID)
	if err != nil {
		logrus.Error("Error getting client by id on the repository:", err)
		return nil, NewPurchaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente no banco de dados")
	}

	if client == nil {
		return nil, NewPurchaseError(ErrNoClientSelected, apiErrors.ErrClientNotFound, "Cliente não encontrado")
	}

	display, canonical := money.ParseRawDigits(request.RawValue)
	if canonical == "" {
		return &domain.PreviewPurchaseResponse{}, nil
	}

	amount, err := decimal.NewFromString(canonical)
	if err != nil {
		return nil, NewPurchaseError(ErrInvalidAmount, apiErrors.ErrInvalidFormat, "Valor da compra inválido")
	}

	return &domain.PreviewPurchaseResponse{
		Display:   display,
		Canonical: canonical,
		Discount:  s.quoter.Quote(amount, client.Benefits),
	}, nil
}

func (s *Service) ListLatestPurchases(limit uint64) ([]*domain.Purchase, error) {
	if limit == 0 {
		limit = defaultLatestLimit
	}

	purchases, err := s.purchaseRepository.List(domain.PurchaseFilter{Limit: limit})
	if err != nil {
		logrus.Error("Error listing purchases on the repository:", err)
		return nil, NewPurchaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar compras no banco de dados")
	}

	return purchases, nil
}

func (s *Service) ListPurchasesByClient(clientName string, startDate, endDate *time.Time) ([]*domain.Purchase, error) {
	if clientName == "" {
		return nil, NewPurchaseError(ErrNoClientSelected, apiErrors.ErrMissingRequiredData, "Nome do cliente não fornecido")
	}

	purchases, err := s.purchaseRepository.List(domain.PurchaseFilter{
		ClientName: clientName,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		logrus.Error("Error listing purchases on the repository:", err)
		return nil, NewPurchaseError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar compras no banco de dados")
	}

	return purchases, nil
}
