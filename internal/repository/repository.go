package repository

import (
	"context"
	"errors"

	"star-gestao-backend/internal/domain"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrVersionConflict = errors.New("record was modified concurrently")
	ErrDuplicate       = errors.New("duplicate record")
	ErrInUse           = errors.New("record is referenced by other records")
	ErrInvalidRef      = errors.New("referenced record does not exist")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int32) error
}

type CommitmentRepository interface {
	Create(ctx context.Context, c *domain.Commitment) error
	GetByID(ctx context.Context, id int32) (*domain.Commitment, error)
	List(ctx context.Context) ([]domain.Commitment, error)
	Update(ctx context.Context, c *domain.Commitment) error
	Delete(ctx context.Context, id int32) error
	// ListActiveOn returns commitments whose period contains day, items included
	ListActiveOn(ctx context.Context, day domain.Date) ([]domain.Commitment, error)
}

type VehiclePartRepository interface {
	Create(ctx context.Context, p *domain.VehiclePart) error
	GetByID(ctx context.Context, id int32) (*domain.VehiclePart, error)
	List(ctx context.Context, vehicleID *int32) ([]domain.VehiclePart, error)
	Update(ctx context.Context, p *domain.VehiclePart) error
	Delete(ctx context.Context, id int32) error
}

type FinancingRepository interface {
	// Create stores the contract, its asset links and its installments in one transaction
	Create(ctx context.Context, f *domain.Financing) error
	// GetByID returns the contract with its installments ordered by number
	GetByID(ctx context.Context, id int32) (*domain.Financing, error)
	List(ctx context.Context, status domain.FinancingStatus) ([]domain.Financing, error)
	// Update writes the header when f.Version matches the stored version. With
	// replaceSchedule the stored installments are replaced by f.Installments.
	Update(ctx context.Context, f *domain.Financing, replaceSchedule bool) error
	// SaveInstallment writes one installment and the contract aggregates, checking f.Version
	SaveInstallment(ctx context.Context, f *domain.Financing, inst *domain.Installment) error
	Delete(ctx context.Context, id int32) error

	MarkOverdueInstallments(ctx context.Context, today domain.Date) (int64, error)
	// ListUnpaidInstallments returns unpaid installments of active contracts due on or before until
	ListUnpaidInstallments(ctx context.Context, until domain.Date) ([]domain.UpcomingInstallment, error)
	ListAllInstallments(ctx context.Context) ([]domain.Installment, error)
	// ActiveTotals returns the number of active contracts and their unpaid balance
	ActiveTotals(ctx context.Context) (int32, float64, error)
}

type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, kind domain.AccountKind, id int32) (*domain.Account, error)
	List(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error)
	MarkPaid(ctx context.Context, kind domain.AccountKind, id int32, paidOn domain.Date) (*domain.Account, error)
	Delete(ctx context.Context, kind domain.AccountKind, id int32) error

	MarkOverdue(ctx context.Context, kind domain.AccountKind, today domain.Date) (int64, error)
	// ListDue returns unpaid accounts due on or before until
	ListDue(ctx context.Context, kind domain.AccountKind, until domain.Date) ([]domain.Account, error)
	Totals(ctx context.Context, kind domain.AccountKind, today domain.Date) (*domain.AccountTotals, error)
}

type RateRepository interface {
	Get(ctx context.Context, source domain.RateSource) (*domain.BenchmarkRate, error)
	Upsert(ctx context.Context, rate *domain.BenchmarkRate) error
}

type DashboardRepository interface {
	GetStats(ctx context.Context, today, upcomingUntil domain.Date) (*domain.Stats, error)
	Ping(ctx context.Context) error
}
