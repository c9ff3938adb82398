package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/engine"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
	"github.com/oklog/ulid/v2"
)

// TransactionIDGenerator выдает идентификатор транзакции покупки плана.
type TransactionIDGenerator func(plan string) string

// PlanTransactionID формат PLAN-<NAME>-<ULID>. ULID упорядочен по времени, случайная часть 80 бит;
// уникальность дополнительно гарантирует индекс хранилища.
func PlanTransactionID(plan string) string {
	return "PLAN-" + plan + "-" + ulid.Make().String()
}

type PlanService struct {
	uow     uow.UOW
	catalog PlanCatalog
	now     Clock
	newTxID TransactionIDGenerator
}

func NewPlanService(u uow.UOW, plans PlanCatalog, now Clock, newTxID TransactionIDGenerator) *PlanService {
	if now == nil {
		now = time.Now
	}
	if newTxID == nil {
		newTxID = PlanTransactionID
	}
	return &PlanService{
		uow:     u,
		catalog: plans,
		now:     now,
		newTxID: newTxID,
	}
}

// PurchasePlan покупает план за счет доступного баланса. Имя плана и сумма проверяются до обращения к хранилищу
// (domain.ErrUnknownPlan, domain.ErrAmountOutOfRange). Нехватка баланса и повторная покупка того же плана
// возвращаются результатом с Success=false.
func (s *PlanService) PurchasePlan(
	ctx context.Context,
	userID domain.UserID,
	planName string,
	customAmount *domain.Money,
) (*domain.PurchaseResult, error) {
	plan, err := s.catalog.Lookup(planName)
	if err != nil {
		return nil, fmt.Errorf("purchasing plan: %w", err)
	}
	amount, err := s.catalog.ResolveAmount(plan, customAmount)
	if err != nil {
		return nil, fmt.Errorf("purchasing plan: %w", err)
	}

	var res domain.PurchaseResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		// блокировка пользователя сериализует все операции, тратящие его баланс.
		if _, err = userRepo.LockUserByID(c, userID.Int64()); err != nil {
			return err //nolint:wrapcheck
		}

		l, err := loadLedger(c, tx, userID.Int64(), withCash|withPlans)
		if err != nil {
			return err
		}
		available := engine.WalletBalanceOf(userID.Int64(), l.cash, l.plans).AvailableBalance
		res.RemainingBalance = available
		if available.LessThan(amount) {
			res.Outcome = domain.OutcomeInsufficientBalance
			res.Required = amount
			res.Shortfall = amount.Sub(available)
			res.Message = fmt.Sprintf("Insufficient balance. Available: $%s, Required: $%s", available, amount)
			return nil
		}

		depositRepo, err := uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		exists, err := depositRepo.HasVerifiedPlan(c, userID.Int64(), plan.Name)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if exists {
			res.Outcome = domain.OutcomeDuplicatePlan
			res.Message = fmt.Sprintf("You already have an active %s plan", plan.Name)
			return nil
		}

		created, err := depositRepo.CreatePlanDeposit(c, repoargs.CreatePlanDeposit{
			UserID:        userID.Int64(),
			Amount:        amount,
			TransactionID: s.newTxID(plan.Name),
			Plan:          plan.Name,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		res.Success = true
		res.Outcome = domain.OutcomeOK
		res.RemainingBalance = available.Sub(amount)
		res.Plan = purchasedPlan(created, plan)
		res.Message = fmt.Sprintf("Successfully purchased %s plan for $%s", plan.Name, amount)
		return nil
	})
	if txErr != nil {
		return nil, wrapErr(ctx, "purchasing plan", txErr)
	}
	return &res, nil
}

// ListAvailablePlans список планов каталога по возрастанию минимальной цены.
func (s *PlanService) ListAvailablePlans() []catalog.Summary {
	return s.catalog.List()
}

// UserPlans покупки планов пользователя с ожидаемым доходом и признаком погашения на момент now. Строки с
// планами, которых больше нет в каталоге, возвращаются с KnownPlan=false.
func (s *PlanService) UserPlans(ctx context.Context, userID domain.UserID, now time.Time) ([]domain.UserPlan, error) {
	var rows []domain.Deposit
	err := s.uow.View(ctx, func(c context.Context, tx uow.TX) error {
		l, err := loadLedger(c, tx, userID.Int64(), withPlans)
		if err != nil {
			return err
		}
		rows = l.plans
		return nil
	})
	if err != nil {
		return nil, wrapErr(ctx, "getting user plans", err)
	}

	res := make([]domain.UserPlan, len(rows))
	for i, row := range rows {
		res[i] = domain.UserPlan{Deposit: row}
		plan, lookupErr := s.catalog.Lookup(row.PlanName())
		if lookupErr != nil {
			continue
		}
		res[i].KnownPlan = true
		res[i].Duration = plan.Duration
		res[i].ReturnRate = plan.ReturnRate
		res[i].ExpectedReturn = engine.RoundTenths(plan.ExpectedReturn(row.Amount))
		res[i].IsMatured = plan.IsMatured(row.CreatedAt, now)
	}
	return res, nil
}

func purchasedPlan(row *domain.Deposit, plan catalog.Plan) *domain.PurchasedPlan {
	return &domain.PurchasedPlan{
		ID:             row.ID,
		PlanName:       plan.Name,
		Amount:         row.Amount,
		TransactionID:  row.TransactionID,
		Duration:       plan.Duration,
		ReturnRate:     plan.ReturnRate,
		ExpectedReturn: engine.RoundTenths(plan.ExpectedReturn(row.Amount)),
		CreatedAt:      row.CreatedAt,
	}
}
