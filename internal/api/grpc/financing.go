package grpc

import (
	"context"
	"encoding/json"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type FinancingHandler struct {
	financingService service.FinancingService
}

func NewFinancingHandler(financingService service.FinancingService) *FinancingHandler {
	return &FinancingHandler{financingService: financingService}
}

type presentValueRequest struct {
	ID            int32        `json:"id"`
	UseCDI        bool         `json:"usar_cdi"`
	ReferenceDate *domain.Date `json:"data_referencia"`
}

type scheduleRequest struct {
	TotalValue       float64      `json:"valor_total"`
	DownPayment      float64      `json:"valor_entrada"`
	InstallmentCount int32        `json:"numero_parcelas"`
	InterestRate     float64      `json:"taxa_juros"`
	StartDate        *domain.Date `json:"data_inicio"`
}

// PresentValue returns the discounted remaining balance of a financing.
// The response is an empty struct when nothing remains to be paid.
func (h *FinancingHandler) PresentValue(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	var in presentValueRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	if in.ID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	logger.Debug("gRPC present value", "userID", userID, "financingID", in.ID)

	source := domain.RateSourceSELIC
	if in.UseCDI {
		source = domain.RateSourceCDI
	}
	asOf := domain.Today()
	if in.ReferenceDate != nil && !in.ReferenceDate.IsZero() {
		asOf = *in.ReferenceDate
	}

	pv, err := h.financingService.PresentValue(ctx, in.ID, source, asOf)
	if err != nil {
		return nil, toStatus(err)
	}
	if pv == nil {
		return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
	}
	return toStruct(pv)
}

// Schedule builds the installment schedule for the given terms without storing it
func (h *FinancingHandler) Schedule(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in scheduleRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	input := domain.FinancingInput{
		TotalValue:       in.TotalValue,
		DownPayment:      in.DownPayment,
		InstallmentCount: in.InstallmentCount,
		InterestRate:     in.InterestRate,
	}
	if in.StartDate != nil {
		input.StartDate = *in.StartDate
	}

	sim, err := h.financingService.Simulate(ctx, input)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(sim)
}

func fromStruct(s *structpb.Struct, dst any) error {
	raw, err := protojson.Marshal(s)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return nil
}

func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}
