package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps HTTP route names and gRPC full method names
// to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Meta and auth - Public
	"auth.login": SecurityPublic,
	"health":     SecurityPublic,
	"info":       SecurityPublic,

	// Receipt transfer links carry their own signed token
	"storage.upload":   SecurityPublic,
	"storage.download": SecurityPublic,

	// Dashboards - Access Protected
	"stats":                SecurityAccess,
	"financeiro.dashboard": SecurityAccess,

	// Inventory - Access Protected
	"itens.list":   SecurityAccess,
	"itens.create": SecurityAccess,
	"itens.get":    SecurityAccess,
	"itens.update": SecurityAccess,
	"itens.delete": SecurityAccess,

	"categorias.list":   SecurityAccess,
	"categorias.campos": SecurityAccess,

	// Commitments - Access Protected
	"compromissos.list":   SecurityAccess,
	"compromissos.create": SecurityAccess,
	"compromissos.get":    SecurityAccess,
	"compromissos.update": SecurityAccess,
	"compromissos.delete": SecurityAccess,
	"disponibilidade":     SecurityAccess,

	// Vehicle parts - Access Protected
	"pecas.list":   SecurityAccess,
	"pecas.create": SecurityAccess,
	"pecas.get":    SecurityAccess,
	"pecas.update": SecurityAccess,
	"pecas.delete": SecurityAccess,

	// Financings - Access Protected
	"financiamentos.list":                SecurityAccess,
	"financiamentos.create":              SecurityAccess,
	"financiamentos.simulate":            SecurityAccess,
	"financiamentos.get":                 SecurityAccess,
	"financiamentos.update":              SecurityAccess,
	"financiamentos.delete":              SecurityAccess,
	"financiamentos.cancel":              SecurityAccess,
	"financiamentos.present_value":       SecurityAccess,
	"financiamentos.installment.pay":     SecurityAccess,
	"financiamentos.installment.update":  SecurityAccess,
	"financiamentos.installment.receipt": SecurityAccess,

	// Accounts - Access Protected
	"contas_pagar.list":     SecurityAccess,
	"contas_pagar.create":   SecurityAccess,
	"contas_pagar.settle":   SecurityAccess,
	"contas_pagar.delete":   SecurityAccess,
	"contas_receber.list":   SecurityAccess,
	"contas_receber.create": SecurityAccess,
	"contas_receber.settle": SecurityAccess,
	"contas_receber.delete": SecurityAccess,

	"sync.planilha": SecurityAccess,

	// gRPC
	"/grpc.health.v1.Health/Check":                 SecurityPublic,
	"/grpc.health.v1.Health/Watch":                 SecurityPublic,
	"/stargestao.v1.FinancingService/PresentValue": SecurityAccess,
	"/stargestao.v1.FinancingService/Schedule":     SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route or method
func GetSecurityLevel(method string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
