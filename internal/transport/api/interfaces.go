package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/internal/service"
	"github.com/shopspring/decimal"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type WalletServicer interface {
	GetWalletBalance(ctx context.Context, userID domain.UserID) (*domain.WalletBalance, error)
	ActiveInvestmentValue(ctx context.Context, userID domain.UserID, now time.Time) (decimal.Decimal, error)
	MaturedValue(ctx context.Context, userID domain.UserID, now time.Time) (decimal.Decimal, error)
	FinalBalance(ctx context.Context, userID domain.UserID) (decimal.Decimal, error)
	TotalWithdrawals(ctx context.Context, userID domain.UserID) (decimal.Decimal, error)
	CreateDeposit(
		ctx context.Context,
		userID domain.UserID,
		amount domain.Money,
		transactionID domain.TransactionID,
	) (*domain.DepositResult, error)
	UserTransactions(ctx context.Context, userID domain.UserID) ([]domain.CashTransaction, error)
	UserWithdrawals(ctx context.Context, userID domain.UserID) ([]domain.Withdrawal, error)
	RequestWithdrawal(
		ctx context.Context,
		userID domain.UserID,
		amount domain.Money,
		transactionID domain.TransactionID,
	) (*domain.WithdrawalResult, error)
}

type PlanServicer interface {
	PurchasePlan(
		ctx context.Context,
		userID domain.UserID,
		planName string,
		customAmount *domain.Money,
	) (*domain.PurchaseResult, error)
	ListAvailablePlans() []catalog.Summary
	UserPlans(ctx context.Context, userID domain.UserID, now time.Time) ([]domain.UserPlan, error)
}

type AdminServicer interface {
	VerifyDeposit(
		ctx context.Context,
		transactionID domain.TransactionID,
		adminID domain.UserID,
		shouldConfirm bool,
	) (*domain.VerificationResult, error)
	VerifyWithdrawal(
		ctx context.Context,
		transactionID domain.TransactionID,
		adminID domain.UserID,
		shouldConfirm bool,
	) (*domain.VerificationResult, error)
	PendingDeposits(ctx context.Context, adminID domain.UserID, page repoargs.Page) (*domain.PendingDepositsPage, error)
	ListDeposits(ctx context.Context, adminID domain.UserID, page repoargs.Page) (*domain.VerifiedDepositsPage, error)
	AmendPlanAmount(ctx context.Context, args domain.AmendPlanArgs) (*domain.AmendResult, error)
}

// HealthChecker проверка доступности хранилища. *pgxpool.Pool удовлетворяет интерфейсу.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
