package handler

import (
	"net/http"

	"github.com/ecoclean/fidelidade-api/internal/api/handler/router"
	"github.com/ecoclean/fidelidade-api/internal/usecases/authenticating"
	"github.com/ecoclean/fidelidade-api/internal/usecases/client"
	"github.com/ecoclean/fidelidade-api/internal/usecases/purchasing"
	"github.com/ecoclean/fidelidade-api/internal/usecases/ranking"
	"github.com/ecoclean/fidelidade-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Clients(service client.ClientService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ClientList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Caminho no singular para não conflitar com /v1/clients/:id
			Path:        "/v1/client/:name",
			Method:      http.MethodGet,
			Handler:     GetClientByName(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Purchases(service purchasing.PurchaseService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/purchases",
			Method:      http.MethodGet,
			Handler:     PurchaseList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/purchases",
			Method:      http.MethodPost,
			Handler:     RegisterPurchase(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/purchases/preview",
			Method:      http.MethodPost,
			Handler:     PreviewPurchase(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/purchases/client/:name",
			Method:      http.MethodGet,
			Handler:     PurchasesByClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func ClientRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking/clients/total-spent",
			Method:      http.MethodGet,
			Handler:     GetClientRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
