package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/ecoclean/fidelidade-api/internal/domain"
	"github.com/ecoclean/fidelidade-api/internal/usecases/client"
	"github.com/ecoclean/fidelidade-api/pkg/apiErrors"
)

// CreateClient cadastra um novo cliente do programa de fidelidade
func CreateClient(service client.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClient")

		var newClient *domain.Client

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&newClient); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateClient(newClient)
		if err != nil {
			handleClientError(w, err, "Erro ao cadastrar cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// ClientList lista os clientes cadastrados. Aceita o parâmetro de busca
// "q", que filtra por nome ou CNPJ.
func ClientList(service client.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")

		clients, err := service.SearchClients(term)
		if err != nil {
			logrus.Error("Error listing clients:", err)
			handleClientError(w, err, "Erro ao listar clientes")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetClient retorna um cliente por ID
func GetClient(service client.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		found, err := service.GetClient(id)
		if err != nil {
			handleClientError(w, err, "Erro ao buscar cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(found); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetClientByName retorna um cliente pelo nome exato, sem diferenciar
// maiúsculas. Usado pelo fluxo de identificação no balcão.
func GetClientByName(service client.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente não fornecido", nil)
			return
		}

		found, err := service.GetClientByName(name)
		if err != nil {
			handleClientError(w, err, "Erro ao buscar cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(found); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateClient edita o cadastro de um cliente existente
func UpdateClient(service client.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateClient")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		updated, err := service.UpdateClient(&updateRequest)
		if err != nil {
			handleClientError(w, err, "Erro ao atualizar cliente")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// handleClientError mapeia erros do cadastro de clientes para a resposta da API
func handleClientError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	// Verificar se é um ClientError para obter o código específico
	var clientErr *client.ClientError
	if errors.As(err, &clientErr) {
		apiErrors.WriteError(w, clientErr.Code, clientErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, client.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)

	case errors.Is(err, client.ErrDuplicateCNPJ):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateCNPJ, "CNPJ já cadastrado", nil)

	case errors.Is(err, client.ErrInvalidBenefits):
		apiErrors.WriteError(w, apiErrors.ErrInvalidBenefits, err.Error(), nil)

	case errors.Is(err, client.ErrMissingFields):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, client.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar clientes no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
