package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/ecoclean/fidelidade-api/internal/domain"
	"github.com/ecoclean/fidelidade-api/internal/usecases/purchasing"
	"github.com/ecoclean/fidelidade-api/pkg/apiErrors"
	"github.com/ecoclean/fidelidade-api/pkg/utils"
)

// RegisterPurchase registra uma compra para um cliente do programa
func RegisterPurchase(service purchasing.PurchaseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterPurchase")

		var req *domain.CreatePurchaseRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		resp, err := service.RegisterPurchase(req)
		if err != nil {
			handlePurchaseError(w, err, "Erro ao registrar compra")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// PreviewPurchase calcula a exibição formatada do valor digitado e a
// sugestão de desconto para o cliente selecionado
func PreviewPurchase(service purchasing.PurchaseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req *domain.PreviewPurchaseRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		resp, err := service.PreviewPurchase(req)
		if err != nil {
			handlePurchaseError(w, err, "Erro ao calcular preview da compra")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// PurchaseList lista as compras mais recentes do livro. Aceita o
// parâmetro "limit" para controlar a quantidade retornada.
func PurchaseList(service purchasing.PurchaseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var limit uint64
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.ParseUint(limitStr, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		purchases, err := service.ListLatestPurchases(limit)
		if err != nil {
			handlePurchaseError(w, err, "Erro ao listar compras")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(purchases); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// PurchasesByClient retorna o histórico de compras de um cliente pelo
// nome, com filtro opcional por período (start_date e end_date no
// formato 2006-01-02)
func PurchasesByClient(service purchasing.PurchaseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente não fornecido", nil)
			return
		}

		var startDate, endDate *time.Time

		if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
			parsed, err := utils.ParseDate(startDateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", nil)
				return
			}
			startDate = parsed
		}

		if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
			parsed, err := utils.ParseDate(endDateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", nil)
				return
			}
			endDate = parsed
		}

		purchases, err := service.ListPurchasesByClient(name, startDate, endDate)
		if err != nil {
			handlePurchaseError(w, err, "Erro ao buscar histórico de compras")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(purchases); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// handlePurchaseError mapeia erros do livro de compras para a resposta da API
func handlePurchaseError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(err)

	// Verificar se é um PurchaseError para obter o código específico
	var purchaseErr *purchasing.PurchaseError
	if errors.As(err, &purchaseErr) {
		apiErrors.WriteError(w, purchaseErr.Code, purchaseErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, purchasing.ErrNoClientSelected) || errors.Is(err, purchasing.ErrNoAmountEntered):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, purchasing.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, purchasing.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o livro de compras", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
