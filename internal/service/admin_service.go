package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/engine"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
)

// AdminService операции администратора. Роль проверяется по хранилищу на каждый вызов.
type AdminService struct {
	uow     uow.UOW
	catalog PlanCatalog
	now     Clock
}

func NewAdminService(u uow.UOW, plans PlanCatalog, now Clock) *AdminService {
	if now == nil {
		now = time.Now
	}
	return &AdminService{
		uow:     u,
		catalog: plans,
		now:     now,
	}
}

// VerifyDeposit подтверждает (shouldConfirm=true) или отклоняет депозит. Повторный вызов с тем же решением
// ничего не меняет и возвращает результат с Outcome=domain.OutcomeAlreadyInState.
func (s *AdminService) VerifyDeposit(
	ctx context.Context,
	transactionID domain.TransactionID,
	adminID domain.UserID,
	shouldConfirm bool,
) (*domain.VerificationResult, error) {
	res := domain.VerificationResult{TransactionID: transactionID.String()}
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if _, err := requireAdmin(c, tx, adminID); err != nil {
			return err
		}
		cashRepo, err := uow.GetAs[CashTransactionRepository](tx, uow.RepositoryName(repoargs.CashTransactionRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		trans, err := cashRepo.LockByTransactionID(c, transactionID.String())
		if err != nil {
			return err //nolint:wrapcheck
		}
		res.AffectedUserID = trans.UserID
		res.NewStatus = trans.Status
		if trans.Status == shouldConfirm {
			res.Outcome = domain.OutcomeAlreadyInState
			res.Message = fmt.Sprintf("Transaction is already %s", statusText(shouldConfirm))
			return nil
		}
		if trans.Status {
			// отзыв подтверждения уменьшает доступный баланс, как и покупка плана.
			userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			if _, err = userRepo.LockUserByID(c, trans.UserID); err != nil {
				return err //nolint:wrapcheck
			}
		}
		updated, err := cashRepo.SetStatus(c, trans.ID, shouldConfirm)
		if err != nil {
			return err //nolint:wrapcheck
		}
		res.Success = true
		res.Outcome = domain.OutcomeOK
		res.NewStatus = updated.Status
		res.Message = fmt.Sprintf("Transaction %s has been %s successfully", transactionID, actionText(shouldConfirm))
		return nil
	})
	if err != nil {
		return nil, wrapErr(ctx, "verifying deposit", err)
	}
	return &res, nil
}

// VerifyWithdrawal подтверждает или отклоняет заявку на вывод. Решение по заявке окончательное: повторный
// вызов для уже рассмотренной заявки возвращает Outcome=domain.OutcomeAlreadyInState.
func (s *AdminService) VerifyWithdrawal(
	ctx context.Context,
	transactionID domain.TransactionID,
	adminID domain.UserID,
	shouldConfirm bool,
) (*domain.VerificationResult, error) {
	res := domain.VerificationResult{TransactionID: transactionID.String()}
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if _, err := requireAdmin(c, tx, adminID); err != nil {
			return err
		}
		withdrawalRepo, err := uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		wd, err := withdrawalRepo.LockByTransactionID(c, transactionID.String())
		if err != nil {
			return err //nolint:wrapcheck
		}
		res.AffectedUserID = wd.UserID
		res.NewStatus = wd.IsVerified
		if !wd.IsPending() {
			res.Outcome = domain.OutcomeAlreadyInState
			res.Message = fmt.Sprintf("Withdrawal is already %s", actionText(wd.IsVerified))
			return nil
		}
		updated, err := withdrawalRepo.SetVerified(c, wd.ID, shouldConfirm)
		if err != nil {
			return err //nolint:wrapcheck
		}
		res.Success = true
		res.Outcome = domain.OutcomeOK
		res.NewStatus = updated.IsVerified
		res.Message = fmt.Sprintf("Withdrawal %s has been %s successfully", transactionID, actionText(shouldConfirm))
		return nil
	})
	if err != nil {
		return nil, wrapErr(ctx, "verifying withdrawal", err)
	}
	return &res, nil
}

// PendingDeposits страница депозитов, ожидающих решения, старые первыми.
func (s *AdminService) PendingDeposits(
	ctx context.Context,
	adminID domain.UserID,
	page repoargs.Page,
) (*domain.PendingDepositsPage, error) {
	var res domain.PendingDepositsPage
	err := s.uow.View(ctx, func(c context.Context, tx uow.TX) error {
		if _, err := requireAdmin(c, tx, adminID); err != nil {
			return err
		}
		cashRepo, err := uow.GetAs[CashTransactionRepository](tx, uow.RepositoryName(repoargs.CashTransactionRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if res.Transactions, err = cashRepo.GetPending(c, page); err != nil {
			return err //nolint:wrapcheck
		}
		if res.TotalCount, err = cashRepo.CountPending(c); err != nil {
			return err //nolint:wrapcheck
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr(ctx, "getting pending deposits", err)
	}
	res.HasMore = int64(page.Offset)+int64(len(res.Transactions)) < res.TotalCount
	return &res, nil
}

// ListDeposits страница подтвержденных покупок планов всех пользователей с логинами владельцев, старые первыми.
func (s *AdminService) ListDeposits(
	ctx context.Context,
	adminID domain.UserID,
	page repoargs.Page,
) (*domain.VerifiedDepositsPage, error) {
	var res domain.VerifiedDepositsPage
	err := s.uow.View(ctx, func(c context.Context, tx uow.TX) error {
		if _, err := requireAdmin(c, tx, adminID); err != nil {
			return err
		}
		depositRepo, err := uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if res.Deposits, err = depositRepo.ListVerified(c, page); err != nil {
			return err //nolint:wrapcheck
		}
		if res.TotalCount, err = depositRepo.CountVerified(c); err != nil {
			return err //nolint:wrapcheck
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr(ctx, "listing verified deposits", err)
	}
	res.HasMore = int64(page.Offset)+int64(len(res.Deposits)) < res.TotalCount
	return &res, nil
}

// AmendPlanAmount меняет сумму купленного плана. Увеличение списывается с доступного баланса и требует
// достаточного остатка, уменьшение возвращает разницу в доступный баланс.
func (s *AdminService) AmendPlanAmount(ctx context.Context, args domain.AmendPlanArgs) (*domain.AmendResult, error) {
	res := domain.AmendResult{UserName: args.UserName, RequestedAmount: args.NewAmount.Decimal()}
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if _, err := requireAdmin(c, tx, args.AdminID); err != nil {
			return err
		}
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		user, err := userRepo.FindUserByUsername(c, args.UserName)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				res.Outcome = domain.OutcomeUserNotFound
				res.Message = fmt.Sprintf("User with username '%s' not found", args.UserName)
				return nil
			}
			return err //nolint:wrapcheck
		}

		plan, err := s.catalog.Lookup(args.PlanName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if !plan.Contains(args.NewAmount.Decimal()) {
			return &domain.AmountOutOfRangeError{
				Plan:   plan.Name,
				Amount: args.NewAmount.Decimal(),
				Min:    plan.PriceMin,
				Max:    plan.PriceMax,
			}
		}

		if _, err = userRepo.LockUserByID(c, user.ID); err != nil {
			return err //nolint:wrapcheck
		}
		return s.amendLocked(c, tx, user, plan, args, &res)
	})
	if err != nil {
		return nil, wrapErr(ctx, "amending plan amount", err)
	}
	return &res, nil
}

// amendLocked вторая половина AmendPlanAmount, выполняется под блокировкой пользователя.
func (s *AdminService) amendLocked(
	ctx context.Context,
	tx uow.TX,
	user *domain.User,
	plan catalog.Plan,
	args domain.AmendPlanArgs,
	res *domain.AmendResult,
) error {
	depositRepo, err := uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	row, err := depositRepo.LockUserPlan(ctx, repoargs.FindUserPlan{
		UserID:        user.ID,
		TransactionID: args.TransactionID.String(),
		Plan:          plan.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			res.Outcome = domain.OutcomePlanNotFound
			res.Message = fmt.Sprintf(
				"Plan with ID %s not found for user '%s' or plan name mismatch", args.TransactionID, args.UserName,
			)
			return nil
		}
		return err //nolint:wrapcheck
	}
	res.CurrentAmount = row.Amount

	l, err := loadLedger(ctx, tx, user.ID, withCash|withPlans)
	if err != nil {
		return err
	}
	available := engine.WalletBalanceOf(user.ID, l.cash, l.plans).AvailableBalance
	newAmount := args.NewAmount.Decimal()
	delta := newAmount.Sub(row.Amount)
	if delta.IsPositive() && available.LessThan(delta) {
		res.Outcome = domain.OutcomeInsufficientBalance
		res.UserBalance = available
		res.Message = fmt.Sprintf(
			"Insufficient balance to increase plan amount. Available: $%s, Required: $%s", available, delta,
		)
		return nil
	}

	updated, err := depositRepo.UpdateAmount(ctx, row.ID, newAmount)
	if err != nil {
		return err //nolint:wrapcheck
	}
	res.Success = true
	res.Outcome = domain.OutcomeOK
	for i := range l.plans {
		if l.plans[i].ID == updated.ID {
			l.plans[i] = *updated
		}
	}
	res.UserBalance = engine.WalletBalanceOf(user.ID, l.cash, l.plans).AvailableBalance
	res.UpdatedPlan = &domain.AmendedPlan{
		ID:                updated.ID,
		PlanName:          plan.Name,
		PreviousAmount:    row.Amount,
		NewAmount:         updated.Amount,
		AmountDifference:  delta,
		TransactionID:     updated.TransactionID,
		Duration:          plan.Duration,
		ReturnRate:        plan.ReturnRate,
		NewExpectedReturn: engine.RoundTenths(plan.ExpectedReturn(updated.Amount)),
		UpdatedAt:         updated.UpdatedAt,
	}
	res.Message = fmt.Sprintf(
		"Successfully updated %s plan amount from $%s to $%s", plan.Name, row.Amount, updated.Amount,
	)
	return nil
}

func statusText(confirmed bool) string {
	if confirmed {
		return "confirmed"
	}
	return "pending"
}

func actionText(confirmed bool) string {
	if confirmed {
		return "confirmed"
	}
	return "rejected"
}
