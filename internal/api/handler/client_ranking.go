package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ecoclean/fidelidade-api/internal/usecases/ranking"
	"github.com/ecoclean/fidelidade-api/pkg/apiErrors"
)

// GetClientRanking retorna o ranking mensal dos clientes por total gasto.
// Aceita o parâmetro "month" no formato 01-2006; ausente, usa o mês atual.
func GetClientRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")

		clientRanking, err := service.GetClientRanking(month)
		if err != nil {
			logrus.Error("Erro ao buscar ranking de clientes:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de clientes", nil)
			return
		}

		if clientRanking == nil {
			apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Nenhum ranking encontrado", nil)
			return
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clientRanking); err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
