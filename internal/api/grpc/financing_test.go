package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"star-gestao-backend/internal/api/grpc/interceptor"
	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/security"
	"star-gestao-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

// Only the calculation methods are reachable over gRPC.
type mockFinancingService struct {
	mock.Mock
	service.FinancingService
}

func (m *mockFinancingService) PresentValue(ctx context.Context, id int32, source domain.RateSource, asOf domain.Date) (*domain.PresentValue, error) {
	args := m.Called(ctx, id, source, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PresentValue), args.Error(1)
}

func (m *mockFinancingService) Simulate(ctx context.Context, in domain.FinancingInput) (*domain.Simulation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Simulation), args.Error(1)
}

func newTestClient(t *testing.T, svc service.FinancingService, tm security.TokenManager) FinancingServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(interceptor.NewAuthInterceptor(tm).Unary()))
	RegisterFinancingServiceServer(srv, NewFinancingHandler(svc))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewFinancingServiceClient(conn)
}

func withToken(t *testing.T, token string) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestFinancingService_Schedule(t *testing.T) {
	tm := security.NewTokenManager("grpc-test-secret", time.Hour)
	svc := new(mockFinancingService)
	client := newTestClient(t, svc, tm)

	access, err := tm.GenerateAccessToken(1, "admin")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		start := domain.NewDate(2024, time.January, 15)
		svc.On("Simulate", mock.Anything, mock.MatchedBy(func(in domain.FinancingInput) bool {
			return in.TotalValue == 10000 && in.DownPayment == 1000 &&
				in.InstallmentCount == 3 && in.StartDate.Equal(start.Time)
		})).Return(&domain.Simulation{
			FinancedAmount: 9000,
			Installments: []domain.Installment{
				{Number: 1, OriginalAmount: 3000, DueDate: domain.NewDate(2024, time.February, 15)},
				{Number: 2, OriginalAmount: 3000, DueDate: domain.NewDate(2024, time.March, 15)},
				{Number: 3, OriginalAmount: 3000, DueDate: domain.NewDate(2024, time.April, 15)},
			},
		}, nil).Once()

		resp, err := client.Schedule(withToken(t, access), mustStruct(t, map[string]any{
			"valor_total":     10000,
			"valor_entrada":   1000,
			"numero_parcelas": 3,
			"taxa_juros":      0,
			"data_inicio":     "2024-01-15",
		}))
		require.NoError(t, err)
		assert.Equal(t, 9000.0, resp.Fields["valor_financiado"].GetNumberValue())
		parcelas := resp.Fields["parcelas"].GetListValue().GetValues()
		require.Len(t, parcelas, 3)
		assert.Equal(t, "2024-02-15", parcelas[0].GetStructValue().Fields["data_vencimento"].GetStringValue())
	})

	t.Run("ValidationError", func(t *testing.T) {
		svc.On("Simulate", mock.Anything, mock.MatchedBy(func(in domain.FinancingInput) bool {
			return in.InstallmentCount == 0
		})).Return(nil, domain.NewValidationError("numero_parcelas deve ser positivo")).Once()

		_, err := client.Schedule(withToken(t, access), mustStruct(t, map[string]any{"valor_total": 100}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("MissingToken", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := client.Schedule(ctx, mustStruct(t, map[string]any{}))
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("TransferTokenRejected", func(t *testing.T) {
		transfer, err := tm.GenerateTransferToken("1/2/file.pdf", time.Minute)
		require.NoError(t, err)
		_, err = client.Schedule(withToken(t, transfer), mustStruct(t, map[string]any{}))
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	svc.AssertExpectations(t)
}

func TestFinancingService_PresentValue(t *testing.T) {
	tm := security.NewTokenManager("grpc-test-secret", time.Hour)
	svc := new(mockFinancingService)
	client := newTestClient(t, svc, tm)

	access, err := tm.GenerateAccessToken(1, "admin")
	require.NoError(t, err)
	asOf := domain.NewDate(2024, time.June, 1)
	sameDay := mock.MatchedBy(func(d domain.Date) bool { return d.Equal(asOf.Time) })

	t.Run("Success", func(t *testing.T) {
		svc.On("PresentValue", mock.Anything, int32(7), domain.RateSourceCDI, sameDay).Return(&domain.PresentValue{
			PresentValue:   8712.34,
			RemainingTotal: 9000,
			RemainingCount: 3,
			DiscountRate:   0.0087,
			RateSource:     domain.RateSourceCDI,
			AsOf:           asOf,
		}, nil).Once()

		resp, err := client.PresentValue(withToken(t, access), mustStruct(t, map[string]any{
			"id":              7,
			"usar_cdi":        true,
			"data_referencia": "2024-06-01",
		}))
		require.NoError(t, err)
		assert.Equal(t, 8712.34, resp.Fields["valor_presente"].GetNumberValue())
		assert.Equal(t, "CDI", resp.Fields["fonte_taxa"].GetStringValue())
	})

	t.Run("NothingRemaining", func(t *testing.T) {
		svc.On("PresentValue", mock.Anything, int32(8), domain.RateSourceSELIC, sameDay).Return(nil, nil).Once()

		resp, err := client.PresentValue(withToken(t, access), mustStruct(t, map[string]any{
			"id":              8,
			"data_referencia": "2024-06-01",
		}))
		require.NoError(t, err)
		assert.Empty(t, resp.Fields)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc.On("PresentValue", mock.Anything, int32(99), domain.RateSourceSELIC, sameDay).Return(nil, repository.ErrNotFound).Once()

		_, err := client.PresentValue(withToken(t, access), mustStruct(t, map[string]any{
			"id":              99,
			"data_referencia": "2024-06-01",
		}))
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("MissingID", func(t *testing.T) {
		_, err := client.PresentValue(withToken(t, access), mustStruct(t, map[string]any{}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("InternalError", func(t *testing.T) {
		svc.On("PresentValue", mock.Anything, int32(5), domain.RateSourceSELIC, sameDay).Return(nil, errors.New("db down")).Once()

		_, err := client.PresentValue(withToken(t, access), mustStruct(t, map[string]any{
			"id":              5,
			"data_referencia": "2024-06-01",
		}))
		st, _ := status.FromError(err)
		assert.Equal(t, codes.Internal, st.Code())
		assert.Equal(t, "internal error", st.Message())
	})

	svc.AssertExpectations(t)
}
