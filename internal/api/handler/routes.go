package handler

import (
	"net/http"

	"github.com/vfg2006/fee-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/client"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/contract"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/payment"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/periods"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Clients(clientService client.ClientService, contractService contract.ContractService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(clientService),
		},
		{
			Path:    "/v1/clients",
			Method:  http.MethodPost,
			Handler: CreateClient(clientService),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodGet,
			Handler: GetClient(clientService),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodPut,
			Handler: UpdateClient(clientService),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodDelete,
			Handler: DeleteClient(clientService),
		},
		{
			Path:    "/v1/clients/:id/contract",
			Method:  http.MethodGet,
			Handler: GetClientContract(contractService),
		},
	}
}

func Contracts(service contract.ContractService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/contracts",
			Method:  http.MethodGet,
			Handler: ListContracts(service),
		},
		{
			Path:    "/v1/contracts",
			Method:  http.MethodPost,
			Handler: CreateContract(service),
		},
		{
			Path:    "/v1/contracts/:id",
			Method:  http.MethodGet,
			Handler: GetContract(service),
		},
		{
			Path:    "/v1/contracts/:id",
			Method:  http.MethodPut,
			Handler: UpdateContract(service),
		},
		{
			Path:    "/v1/contracts/:id",
			Method:  http.MethodDelete,
			Handler: DeleteContract(service),
		},
	}
}

func Payments(service payment.PaymentService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/payments",
			Method:  http.MethodGet,
			Handler: ListPayments(service),
		},
		{
			Path:    "/v1/payments",
			Method:  http.MethodPost,
			Handler: CreatePayment(service),
		},
		{
			Path:    "/v1/payments/:id",
			Method:  http.MethodGet,
			Handler: GetPayment(service),
		},
		{
			Path:    "/v1/payments/:id",
			Method:  http.MethodPut,
			Handler: UpdatePayment(service),
		},
		{
			Path:    "/v1/payments/:id",
			Method:  http.MethodDelete,
			Handler: DeletePayment(service),
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/:client_id",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Periods(service periods.PeriodService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func Calculations() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/calculations/variance",
			Method:  http.MethodGet,
			Handler: CalculateVariance(),
		},
	}
}

func Compliance(reporter OutstandingReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/compliance/outstanding",
			Method:  http.MethodGet,
			Handler: GetOutstandingReport(reporter),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
