package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
)

// Clock источник текущего времени для расчетов начислений.
type Clock func() time.Time

// ledger снимок записей пользователя, над которым работают функции engine.
type ledger struct {
	cash        []domain.CashTransaction
	plans       []domain.Deposit
	withdrawals []domain.Withdrawal
}

type ledgerPart uint8

const (
	withCash ledgerPart = 1 << iota
	withPlans
	withWithdrawals
)

// loadLedger читает нужные части снимка в рамках транзакции tx.
func loadLedger(ctx context.Context, tx uow.TX, userID int64, parts ledgerPart) (*ledger, error) {
	var l ledger
	if parts&withCash != 0 {
		cashRepo, err := uow.GetAs[CashTransactionRepository](tx, uow.RepositoryName(repoargs.CashTransactionRepoName))
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		if l.cash, err = cashRepo.GetByUserID(ctx, userID); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	if parts&withPlans != 0 {
		depositRepo, err := uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		if l.plans, err = depositRepo.GetPlansByUserID(ctx, userID); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	if parts&withWithdrawals != 0 {
		withdrawalRepo, err := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		if l.withdrawals, err = withdrawalRepo.GetByUserID(ctx, userID); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	return &l, nil
}

// wrapErr оборачивает ошибку контекстом операции. Если истек дедлайн вызова, результат операции неизвестен:
// транзакция могла успеть закоммититься. Такая ошибка дополнительно помечается domain.ErrOutcomeUnknown.
func wrapErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrOutcomeUnknown, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireAdmin проверяет роль по хранилищу, а не по токену: роль могли снять после выдачи токена.
func requireAdmin(ctx context.Context, tx uow.TX, adminID domain.UserID) (*domain.User, error) {
	userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	admin, err := userRepo.FindUserByID(ctx, adminID.Int64())
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d not found", domain.ErrForbidden, adminID)
		}
		return nil, err //nolint:wrapcheck
	}
	if !admin.IsAdmin() {
		return nil, fmt.Errorf("%w: user %d is not an administrator", domain.ErrForbidden, adminID)
	}
	return admin, nil
}
