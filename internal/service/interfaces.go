package service

import (
	"context"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// PlanCatalog источник определений планов.
type PlanCatalog interface {
	Lookup(name string) (catalog.Plan, error)
	List() []catalog.Summary
	ResolveAmount(p catalog.Plan, custom *domain.Money) (decimal.Decimal, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	LockUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type CashTransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateCashTransaction) (*domain.CashTransaction, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.CashTransaction, error)
	LockByTransactionID(ctx context.Context, transactionID string) (*domain.CashTransaction, error)
	SetStatus(ctx context.Context, id int64, status bool) (*domain.CashTransaction, error)
	GetPending(ctx context.Context, page repoargs.Page) ([]domain.CashTransaction, error)
	CountPending(ctx context.Context) (int64, error)
}

type DepositRepository interface {
	CreatePlanDeposit(ctx context.Context, args repoargs.CreatePlanDeposit) (*domain.Deposit, error)
	GetPlansByUserID(ctx context.Context, userID int64) ([]domain.Deposit, error)
	HasVerifiedPlan(ctx context.Context, userID int64, plan string) (bool, error)
	LockUserPlan(ctx context.Context, args repoargs.FindUserPlan) (*domain.Deposit, error)
	UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Deposit, error)
	ListVerified(ctx context.Context, page repoargs.Page) ([]domain.OwnedDeposit, error)
	CountVerified(ctx context.Context) (int64, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Withdrawal, error)
	LockByTransactionID(ctx context.Context, transactionID string) (*domain.Withdrawal, error)
	SetVerified(ctx context.Context, id int64, verified bool) (*domain.Withdrawal, error)
}
