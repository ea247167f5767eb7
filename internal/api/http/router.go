package http

import (
	"net/http"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/security"
	"star-gestao-backend/internal/service"
	"star-gestao-backend/internal/storage"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

// Services groups what the REST API needs from the service layer
type Services struct {
	Auth        service.AuthService
	Items       service.ItemService
	Commitments service.CommitmentService
	Parts       service.VehiclePartService
	Financings  service.FinancingService
	Accounts    service.AccountService
	Dashboard   service.DashboardService
	Export      service.ExportService
}

// RouterOptions configures CORS and the receipt transfer endpoints.
// Receipts may be nil, which leaves the transfer endpoints unregistered.
type RouterOptions struct {
	AllowedOrigins      []string
	Receipts            storage.Storage
	Tokens              security.TokenManager
	MaxReceiptBytes     int64
	AllowedReceiptTypes []string
}

// NewRouter builds the REST API. Every route is named; the name selects
// its security level in config.EndpointSecurityConfig.
func NewRouter(svc Services, opts RouterOptions) http.Handler {
	router := mux.NewRouter()
	router.Use(authMiddleware(svc.Auth))

	api := router.PathPrefix("/api").Subrouter()

	auth := NewAuthHandler(svc.Auth)
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost).Name("auth.login")

	dash := NewDashboardHandler(svc.Dashboard, svc.Export)
	api.HandleFunc("/health", dash.Health).Methods(http.MethodGet).Name("health")
	api.HandleFunc("/info", dash.Info).Methods(http.MethodGet).Name("info")
	api.HandleFunc("/stats", dash.Stats).Methods(http.MethodGet).Name("stats")
	api.HandleFunc("/financeiro/dashboard", dash.Financial).Methods(http.MethodGet).Name("financeiro.dashboard")
	api.HandleFunc("/sync/planilha", dash.SyncSheet).Methods(http.MethodPost).Name("sync.planilha")

	items := NewItemHandler(svc.Items)
	api.HandleFunc("/itens", items.List).Methods(http.MethodGet).Name("itens.list")
	api.HandleFunc("/itens", items.Create).Methods(http.MethodPost).Name("itens.create")
	api.HandleFunc("/itens/{id:[0-9]+}", items.Get).Methods(http.MethodGet).Name("itens.get")
	api.HandleFunc("/itens/{id:[0-9]+}", items.Update).Methods(http.MethodPut).Name("itens.update")
	api.HandleFunc("/itens/{id:[0-9]+}", items.Delete).Methods(http.MethodDelete).Name("itens.delete")
	api.HandleFunc("/categorias", items.ListCategories).Methods(http.MethodGet).Name("categorias.list")
	api.HandleFunc("/categorias/{nome}/campos", items.CategoryFields).Methods(http.MethodGet).Name("categorias.campos")

	commitments := NewCommitmentHandler(svc.Commitments)
	api.HandleFunc("/compromissos", commitments.List).Methods(http.MethodGet).Name("compromissos.list")
	api.HandleFunc("/compromissos", commitments.Create).Methods(http.MethodPost).Name("compromissos.create")
	api.HandleFunc("/compromissos/{id:[0-9]+}", commitments.Get).Methods(http.MethodGet).Name("compromissos.get")
	api.HandleFunc("/compromissos/{id:[0-9]+}", commitments.Update).Methods(http.MethodPut).Name("compromissos.update")
	api.HandleFunc("/compromissos/{id:[0-9]+}", commitments.Delete).Methods(http.MethodDelete).Name("compromissos.delete")
	api.HandleFunc("/disponibilidade", commitments.Availability).Methods(http.MethodPost).Name("disponibilidade")

	parts := NewVehiclePartHandler(svc.Parts)
	api.HandleFunc("/pecas-carros", parts.List).Methods(http.MethodGet).Name("pecas.list")
	api.HandleFunc("/pecas-carros", parts.Create).Methods(http.MethodPost).Name("pecas.create")
	api.HandleFunc("/pecas-carros/{id:[0-9]+}", parts.Get).Methods(http.MethodGet).Name("pecas.get")
	api.HandleFunc("/pecas-carros/{id:[0-9]+}", parts.Update).Methods(http.MethodPut).Name("pecas.update")
	api.HandleFunc("/pecas-carros/{id:[0-9]+}", parts.Delete).Methods(http.MethodDelete).Name("pecas.delete")

	fin := NewFinancingHandler(svc.Financings)
	api.HandleFunc("/financiamentos", fin.List).Methods(http.MethodGet).Name("financiamentos.list")
	api.HandleFunc("/financiamentos", fin.Create).Methods(http.MethodPost).Name("financiamentos.create")
	api.HandleFunc("/financiamentos/simular", fin.Simulate).Methods(http.MethodPost).Name("financiamentos.simulate")
	api.HandleFunc("/financiamentos/{id:[0-9]+}", fin.Get).Methods(http.MethodGet).Name("financiamentos.get")
	api.HandleFunc("/financiamentos/{id:[0-9]+}", fin.Update).Methods(http.MethodPut).Name("financiamentos.update")
	api.HandleFunc("/financiamentos/{id:[0-9]+}", fin.Delete).Methods(http.MethodDelete).Name("financiamentos.delete")
	api.HandleFunc("/financiamentos/{id:[0-9]+}/cancelar", fin.Cancel).Methods(http.MethodPost).Name("financiamentos.cancel")
	api.HandleFunc("/financiamentos/{id:[0-9]+}/valor-presente", fin.PresentValue).Methods(http.MethodGet).Name("financiamentos.present_value")
	api.HandleFunc("/financiamentos/{id:[0-9]+}/parcelas/{pid:[0-9]+}", fin.UpdateInstallment).Methods(http.MethodPut).Name("financiamentos.installment.update")
	api.HandleFunc("/financiamentos/{id:[0-9]+}/parcelas/{pid:[0-9]+}/pagar", fin.PayInstallment).Methods(http.MethodPost).Name("financiamentos.installment.pay")
	api.HandleFunc("/financiamentos/{id:[0-9]+}/parcelas/{pid:[0-9]+}/comprovante", fin.PrepareReceipt).Methods(http.MethodPost).Name("financiamentos.installment.receipt")

	payables := NewAccountHandler(svc.Accounts, domain.AccountPayable)
	api.HandleFunc("/contas-pagar", payables.List).Methods(http.MethodGet).Name("contas_pagar.list")
	api.HandleFunc("/contas-pagar", payables.Create).Methods(http.MethodPost).Name("contas_pagar.create")
	api.HandleFunc("/contas-pagar/{id:[0-9]+}/marcar-paga", payables.Settle).Methods(http.MethodPost).Name("contas_pagar.settle")
	api.HandleFunc("/contas-pagar/{id:[0-9]+}", payables.Delete).Methods(http.MethodDelete).Name("contas_pagar.delete")

	receivables := NewAccountHandler(svc.Accounts, domain.AccountReceivable)
	api.HandleFunc("/contas-receber", receivables.List).Methods(http.MethodGet).Name("contas_receber.list")
	api.HandleFunc("/contas-receber", receivables.Create).Methods(http.MethodPost).Name("contas_receber.create")
	api.HandleFunc("/contas-receber/{id:[0-9]+}/marcar-recebida", receivables.Settle).Methods(http.MethodPost).Name("contas_receber.settle")
	api.HandleFunc("/contas-receber/{id:[0-9]+}", receivables.Delete).Methods(http.MethodDelete).Name("contas_receber.delete")

	if opts.Receipts != nil {
		receipts := NewReceiptHandler(opts.Receipts, opts.Tokens, opts.MaxReceiptBytes, opts.AllowedReceiptTypes)
		api.HandleFunc("/v1/upload/{token}", receipts.Upload).Methods(http.MethodPut).Name("storage.upload")
		api.HandleFunc("/v1/download/{token}", receipts.Download).Methods(http.MethodGet).Name("storage.download")
	}

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "rota não encontrada")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "método não permitido")
	})

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return requestLogger(corsHandler(router))
}
