package financing

import "star-gestao-backend/internal/domain"

var (
	ErrInvalidInstallmentCount = domain.NewValidationError("o número de parcelas deve ser no mínimo 1")
	ErrEmptyCustomSchedule     = domain.NewValidationError("informe ao menos uma parcela no parcelamento customizado")
	ErrDownPaymentExceedsTotal = domain.NewValidationError("o valor de entrada não pode ser maior que o valor total")
	ErrNonPositiveFinanced     = domain.NewValidationError("o valor financiado deve ser maior que zero")
	ErrNegativeAmount          = domain.NewValidationError("valores monetários não podem ser negativos")
	ErrNegativeRate            = domain.NewValidationError("a taxa de juros não pode ser negativa")
	ErrMissingDueDate          = domain.NewValidationError("toda parcela precisa de data de vencimento")
	ErrMissingStartDate        = domain.NewValidationError("informe a data de início")
	ErrMissingPaymentDate      = domain.NewValidationError("informe a data de pagamento")
	ErrInvalidInstallmentState = domain.NewValidationError("status de parcela inválido")
	ErrInvalidDiscountRate     = domain.NewValidationError("taxa de desconto inválida")
)
