package service

import (
	"errors"

	"star-gestao-backend/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")
	ErrInvalidToken       = errors.New("token inválido ou expirado")

	ErrRateNeedsConfirmation = domain.NewValidationError("taxa de juros acima de 10%% ao período; confirme com confirmar_taxa")
	ErrScheduleLocked        = domain.NewValidationError("o parcelamento não pode ser alterado após o primeiro pagamento")
	ErrFinancingCancelled    = domain.NewValidationError("o financiamento está cancelado")
	ErrInstallmentNotFound   = errors.New("parcela não encontrada")
	ErrUnknownCategory       = errors.New("categoria não encontrada")
	ErrNotAVehicle           = domain.NewValidationError("o item informado não é um veículo")
	ErrInvalidPeriod         = domain.NewValidationError("a data final deve ser igual ou posterior à data inicial")
	ErrMissingCommitmentItem = domain.NewValidationError("informe ao menos um item com quantidade positiva")
	ErrInvalidAccountKind    = errors.New("tipo de conta inválido")
	ErrExportDisabled        = domain.NewValidationError("exportação para planilha não configurada")
)
