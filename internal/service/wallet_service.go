package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/engine"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
	"github.com/shopspring/decimal"
)

// WalletService баланс кошелька, начисления по планам, депозиты и выводы пользователя. Все расчеты
// выполняются заново на каждый вызов по снимку, прочитанному в одной транзакции.
type WalletService struct {
	uow     uow.UOW
	catalog PlanCatalog
	now     Clock
}

func NewWalletService(u uow.UOW, plans PlanCatalog, now Clock) *WalletService {
	if now == nil {
		now = time.Now
	}
	return &WalletService{
		uow:     u,
		catalog: plans,
		now:     now,
	}
}

// GetWalletBalance возвращает баланс кошелька. Для несуществующего пользователя баланс нулевой.
func (s *WalletService) GetWalletBalance(ctx context.Context, userID domain.UserID) (*domain.WalletBalance, error) {
	l, err := s.snapshot(ctx, userID, withCash|withPlans)
	if err != nil {
		return nil, wrapErr(ctx, "getting wallet balance", err)
	}
	balance := engine.WalletBalanceOf(userID.Int64(), l.cash, l.plans)
	return &balance, nil
}

// ActiveInvestmentValue текущая стоимость непогашенных планов на момент now.
func (s *WalletService) ActiveInvestmentValue(
	ctx context.Context,
	userID domain.UserID,
	now time.Time,
) (decimal.Decimal, error) {
	l, err := s.snapshot(ctx, userID, withPlans)
	if err != nil {
		return decimal.Zero, wrapErr(ctx, "calculating active investment", err)
	}
	return engine.ActiveInvestmentValue(l.plans, s.catalog, now), nil
}

// MaturedValue сумма к расчету по планам на момент now.
func (s *WalletService) MaturedValue(ctx context.Context, userID domain.UserID, now time.Time) (decimal.Decimal, error) {
	l, err := s.snapshot(ctx, userID, withPlans)
	if err != nil {
		return decimal.Zero, wrapErr(ctx, "calculating matured value", err)
	}
	return engine.MaturedValue(l.plans, s.catalog, now), nil
}

// FinalBalance MaturedValue на текущий момент минус подтвержденные выводы.
func (s *WalletService) FinalBalance(ctx context.Context, userID domain.UserID) (decimal.Decimal, error) {
	l, err := s.snapshot(ctx, userID, withPlans|withWithdrawals)
	if err != nil {
		return decimal.Zero, wrapErr(ctx, "calculating final balance", err)
	}
	return engine.FinalBalance(l.plans, s.catalog, l.withdrawals, s.now()), nil
}

// TotalWithdrawals сумма подтвержденных выводов.
func (s *WalletService) TotalWithdrawals(ctx context.Context, userID domain.UserID) (decimal.Decimal, error) {
	l, err := s.snapshot(ctx, userID, withWithdrawals)
	if err != nil {
		return decimal.Zero, wrapErr(ctx, "calculating total withdrawals", err)
	}
	return engine.RoundTenths(engine.TotalVerifiedWithdrawals(l.withdrawals)), nil
}

// CreateDeposit создает денежный депозит, ожидающий подтверждения администратором. Повтор идентификатора
// транзакции возвращает domain.ErrDuplicateTransactionID, несуществующий пользователь - domain.ErrNotFound.
func (s *WalletService) CreateDeposit(
	ctx context.Context,
	userID domain.UserID,
	amount domain.Money,
	transactionID domain.TransactionID,
) (*domain.DepositResult, error) {
	var created *domain.CashTransaction
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = userRepo.FindUserByID(c, userID.Int64()); err != nil {
			return err //nolint:wrapcheck
		}
		cashRepo, err := uow.GetAs[CashTransactionRepository](tx, uow.RepositoryName(repoargs.CashTransactionRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		created, err = cashRepo.Create(c, repoargs.CreateCashTransaction{
			UserID:        userID.Int64(),
			Amount:        amount.Decimal(),
			TransactionID: transactionID.String(),
		})
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, wrapErr(ctx, "creating deposit", err)
	}
	return &domain.DepositResult{
		Transaction: created,
		Message:     fmt.Sprintf("Deposit of $%s successful. Awaiting admin confirmation.", amount),
	}, nil
}

// UserTransactions история денежных транзакций, новые первыми.
func (s *WalletService) UserTransactions(ctx context.Context, userID domain.UserID) ([]domain.CashTransaction, error) {
	l, err := s.snapshot(ctx, userID, withCash)
	if err != nil {
		return nil, wrapErr(ctx, "getting user transactions", err)
	}
	return l.cash, nil
}

// UserWithdrawals история выводов, новые первыми.
func (s *WalletService) UserWithdrawals(ctx context.Context, userID domain.UserID) ([]domain.Withdrawal, error) {
	l, err := s.snapshot(ctx, userID, withWithdrawals)
	if err != nil {
		return nil, wrapErr(ctx, "getting user withdrawals", err)
	}
	return l.withdrawals, nil
}

// RequestWithdrawal создает заявку на вывод. Сумма не может превышать итоговый баланс за вычетом уже ожидающих
// заявок; проверка и запись выполняются под блокировкой пользователя.
func (s *WalletService) RequestWithdrawal(
	ctx context.Context,
	userID domain.UserID,
	amount domain.Money,
	transactionID domain.TransactionID,
) (*domain.WithdrawalResult, error) {
	var res domain.WithdrawalResult
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = userRepo.LockUserByID(c, userID.Int64()); err != nil {
			return err //nolint:wrapcheck
		}
		l, err := loadLedger(c, tx, userID.Int64(), withPlans|withWithdrawals)
		if err != nil {
			return err
		}

		withdrawable := engine.Withdrawable(l.plans, s.catalog, l.withdrawals, s.now())
		res.Withdrawable = withdrawable
		if withdrawable.LessThan(amount.Decimal()) {
			res.Outcome = domain.OutcomeInsufficientBalance
			res.Message = fmt.Sprintf("Insufficient balance. Available: $%s, Required: $%s", withdrawable, amount)
			return nil
		}

		withdrawalRepo, err := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		created, err := withdrawalRepo.Create(c, repoargs.CreateWithdrawal{
			UserID:        userID.Int64(),
			Amount:        amount.Decimal(),
			TransactionID: transactionID.String(),
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		res.Success = true
		res.Outcome = domain.OutcomeOK
		res.Withdrawal = created
		res.Message = fmt.Sprintf("Withdrawal of $%s requested. Awaiting admin confirmation.", amount)
		return nil
	})
	if err != nil {
		return nil, wrapErr(ctx, "requesting withdrawal", err)
	}
	return &res, nil
}

func (s *WalletService) snapshot(ctx context.Context, userID domain.UserID, parts ledgerPart) (*ledger, error) {
	var l *ledger
	err := s.uow.View(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		l, err = loadLedger(c, tx, userID.Int64(), parts)
		return err
	})
	return l, err //nolint:wrapcheck
}
