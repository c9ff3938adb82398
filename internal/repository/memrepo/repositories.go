package memrepo

import (
	"context"
	"fmt"
	"sort"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type UserRepository struct {
	base
}

func (r *UserRepository) CreateUser(_ context.Context, user repoargs.CreateUser) (*domain.User, error) {
	defer r.lock()()
	d := &r.store.data
	for _, u := range d.users {
		if u.Username == user.Username {
			return nil, fmt.Errorf("[memrepo/creating user] %w: %s", domain.ErrDuplicateKey, user.Username)
		}
	}
	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}
	now := r.store.now()
	created := domain.User{
		ID:                d.nextID(),
		CreatedAt:         now,
		UpdatedAt:         now,
		Username:          user.Username,
		EncryptedPassword: user.Password,
		Role:              role,
	}
	d.users = append(d.users, created)
	return &created, nil
}

func (r *UserRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	defer r.lock()()
	for _, u := range r.store.data.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, notFound("finding user by username %s", username)
}

func (r *UserRepository) FindUserByID(_ context.Context, id int64) (*domain.User, error) {
	defer r.lock()()
	return r.findByID(id)
}

// LockUserByID внутри Do транзакции уже сериализованы, блокировка строки не нужна.
func (r *UserRepository) LockUserByID(_ context.Context, id int64) (*domain.User, error) {
	defer r.lock()()
	return r.findByID(id)
}

func (r *UserRepository) findByID(id int64) (*domain.User, error) {
	for _, u := range r.store.data.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, notFound("finding user by id %d", id)
}

type CashTransactionRepository struct {
	base
}

func (r *CashTransactionRepository) Create(
	_ context.Context,
	args repoargs.CreateCashTransaction,
) (*domain.CashTransaction, error) {
	defer r.lock()()
	d := &r.store.data
	if err := d.registerTransactionID(args.TransactionID); err != nil {
		return nil, err
	}
	now := r.store.now()
	t := domain.CashTransaction{
		ID:            d.nextID(),
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        args.UserID,
		Amount:        args.Amount,
		TransactionID: args.TransactionID,
	}
	d.cash = append(d.cash, t)
	return &t, nil
}

func (r *CashTransactionRepository) GetByUserID(_ context.Context, userID int64) ([]domain.CashTransaction, error) {
	defer r.lock()()
	res := make([]domain.CashTransaction, 0)
	for _, t := range r.store.data.cash {
		if t.UserID == userID {
			res = append(res, t)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return newerFirst(res[i].CreatedAt.UnixNano(), res[i].ID, res[j].CreatedAt.UnixNano(), res[j].ID)
	})
	return res, nil
}

func (r *CashTransactionRepository) LockByTransactionID(
	_ context.Context,
	transactionID string,
) (*domain.CashTransaction, error) {
	defer r.lock()()
	for _, t := range r.store.data.cash {
		if t.TransactionID == transactionID {
			return &t, nil
		}
	}
	return nil, notFound("locking cash transaction `%s`", transactionID)
}

func (r *CashTransactionRepository) SetStatus(
	_ context.Context,
	id int64,
	status bool,
) (*domain.CashTransaction, error) {
	defer r.lock()()
	d := &r.store.data
	for i := range d.cash {
		if d.cash[i].ID == id {
			d.cash[i].Status = status
			d.cash[i].UpdatedAt = r.store.now()
			t := d.cash[i]
			return &t, nil
		}
	}
	return nil, notFound("updating status of cash transaction %d", id)
}

func (r *CashTransactionRepository) GetPending(
	_ context.Context,
	page repoargs.Page,
) ([]domain.CashTransaction, error) {
	defer r.lock()()
	pending := make([]domain.CashTransaction, 0)
	for _, t := range r.store.data.cash {
		if !t.Status {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return newerFirst(pending[j].CreatedAt.UnixNano(), pending[j].ID, pending[i].CreatedAt.UnixNano(), pending[i].ID)
	})
	if page.Offset >= uint(len(pending)) {
		return []domain.CashTransaction{}, nil
	}
	end := min(page.Offset+page.Limit, uint(len(pending)))
	return pending[page.Offset:end], nil
}

func (r *CashTransactionRepository) CountPending(context.Context) (int64, error) {
	defer r.lock()()
	var count int64
	for _, t := range r.store.data.cash {
		if !t.Status {
			count++
		}
	}
	return count, nil
}

type DepositRepository struct {
	base
}

func (r *DepositRepository) CreatePlanDeposit(
	_ context.Context,
	args repoargs.CreatePlanDeposit,
) (*domain.Deposit, error) {
	defer r.lock()()
	d := &r.store.data
	if err := d.registerTransactionID(args.TransactionID); err != nil {
		return nil, err
	}
	now := r.store.now()
	plan := args.Plan
	dp := domain.Deposit{
		ID:            d.nextID(),
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        args.UserID,
		Amount:        args.Amount,
		TransactionID: args.TransactionID,
		IsVerified:    true,
		Plan:          &plan,
	}
	d.deposits = append(d.deposits, dp)
	return &dp, nil
}

func (r *DepositRepository) GetPlansByUserID(_ context.Context, userID int64) ([]domain.Deposit, error) {
	defer r.lock()()
	res := make([]domain.Deposit, 0)
	for _, dp := range r.store.data.deposits {
		if dp.UserID == userID && dp.Plan != nil {
			res = append(res, dp)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return newerFirst(res[i].CreatedAt.UnixNano(), res[i].ID, res[j].CreatedAt.UnixNano(), res[j].ID)
	})
	return res, nil
}

func (r *DepositRepository) HasVerifiedPlan(_ context.Context, userID int64, plan string) (bool, error) {
	defer r.lock()()
	for _, dp := range r.store.data.deposits {
		if dp.UserID == userID && dp.IsVerified && normalizePlan(dp.PlanName()) == plan {
			return true, nil
		}
	}
	return false, nil
}

func (r *DepositRepository) LockUserPlan(_ context.Context, args repoargs.FindUserPlan) (*domain.Deposit, error) {
	defer r.lock()()
	for _, dp := range r.store.data.deposits {
		if dp.TransactionID == args.TransactionID &&
			dp.UserID == args.UserID &&
			dp.IsVerified &&
			normalizePlan(dp.PlanName()) == args.Plan {
			return &dp, nil
		}
	}
	return nil, notFound("locking plan deposit `%s`", args.TransactionID)
}

func (r *DepositRepository) UpdateAmount(_ context.Context, id int64, amount decimal.Decimal) (*domain.Deposit, error) {
	defer r.lock()()
	d := &r.store.data
	for i := range d.deposits {
		if d.deposits[i].ID == id {
			d.deposits[i].Amount = amount
			d.deposits[i].IsUpdated = true
			d.deposits[i].UpdatedAt = r.store.now()
			dp := d.deposits[i]
			return &dp, nil
		}
	}
	return nil, notFound("updating amount of plan deposit %d", id)
}

func (r *DepositRepository) ListVerified(_ context.Context, page repoargs.Page) ([]domain.OwnedDeposit, error) {
	defer r.lock()()
	d := &r.store.data
	usernames := make(map[int64]string, len(d.users))
	for _, u := range d.users {
		usernames[u.ID] = u.Username
	}
	verified := make([]domain.OwnedDeposit, 0)
	for _, dp := range d.deposits {
		if dp.IsVerified && dp.Plan != nil {
			verified = append(verified, domain.OwnedDeposit{Deposit: dp, Username: usernames[dp.UserID]})
		}
	}
	sort.SliceStable(verified, func(i, j int) bool {
		a, b := verified[i], verified[j]
		return newerFirst(b.CreatedAt.UnixNano(), b.ID, a.CreatedAt.UnixNano(), a.ID)
	})
	if page.Offset >= uint(len(verified)) {
		return []domain.OwnedDeposit{}, nil
	}
	end := min(page.Offset+page.Limit, uint(len(verified)))
	return verified[page.Offset:end], nil
}

func (r *DepositRepository) CountVerified(context.Context) (int64, error) {
	defer r.lock()()
	var count int64
	for _, dp := range r.store.data.deposits {
		if dp.IsVerified && dp.Plan != nil {
			count++
		}
	}
	return count, nil
}

type WithdrawalRepository struct {
	base
}

func (r *WithdrawalRepository) Create(_ context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error) {
	defer r.lock()()
	d := &r.store.data
	if err := d.registerTransactionID(args.TransactionID); err != nil {
		return nil, err
	}
	now := r.store.now()
	wd := domain.Withdrawal{
		ID:            d.nextID(),
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        args.UserID,
		Amount:        args.Amount,
		TransactionID: args.TransactionID,
	}
	d.withdrawals = append(d.withdrawals, wd)
	return &wd, nil
}

func (r *WithdrawalRepository) GetByUserID(_ context.Context, userID int64) ([]domain.Withdrawal, error) {
	defer r.lock()()
	res := make([]domain.Withdrawal, 0)
	for _, wd := range r.store.data.withdrawals {
		if wd.UserID == userID {
			res = append(res, wd)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return newerFirst(res[i].CreatedAt.UnixNano(), res[i].ID, res[j].CreatedAt.UnixNano(), res[j].ID)
	})
	return res, nil
}

func (r *WithdrawalRepository) LockByTransactionID(_ context.Context, transactionID string) (*domain.Withdrawal, error) {
	defer r.lock()()
	for _, wd := range r.store.data.withdrawals {
		if wd.TransactionID == transactionID {
			return &wd, nil
		}
	}
	return nil, notFound("locking withdrawal `%s`", transactionID)
}

func (r *WithdrawalRepository) SetVerified(_ context.Context, id int64, verified bool) (*domain.Withdrawal, error) {
	defer r.lock()()
	d := &r.store.data
	for i := range d.withdrawals {
		if d.withdrawals[i].ID == id {
			d.withdrawals[i].IsVerified = verified
			d.withdrawals[i].IsRejected = !verified
			d.withdrawals[i].UpdatedAt = r.store.now()
			wd := d.withdrawals[i]
			return &wd, nil
		}
	}
	return nil, notFound("updating withdrawal %d", id)
}

// newerFirst порядок "created_at DESC, id DESC".
func newerFirst(aTime, aID, bTime, bID int64) bool {
	if aTime != bTime {
		return aTime > bTime
	}
	return aID > bID
}
