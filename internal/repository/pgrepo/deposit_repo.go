package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const depositColumns = `id, created_at, updated_at, user_id, amount, transaction_id, is_verified, plan, is_updated`

// DepositRepository хранит покупки планов.
type DepositRepository struct {
	conn uow.DBTX
}

func NewDepositRepository(conn uow.DBTX) *DepositRepository {
	return &DepositRepository{conn: conn}
}

// CreatePlanDeposit создает подтвержденную строку покупки плана.
func (d *DepositRepository) CreatePlanDeposit(
	ctx context.Context,
	args repoargs.CreatePlanDeposit,
) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx,
		`WITH reg AS (
			INSERT INTO transaction_ids (transaction_id, kind) VALUES ($3, 'PLAN') RETURNING transaction_id
		)
		INSERT INTO deposits (user_id, amount, transaction_id, is_verified, plan)
		SELECT $1, $2, reg.transaction_id, TRUE, $4 FROM reg
		RETURNING `+depositColumns,
		args.UserID, args.Amount, args.TransactionID, args.Plan,
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "creating plan deposit `%s`", args.TransactionID)
	}
	return deposit, nil
}

// GetPlansByUserID возвращает покупки планов юзера, отсортированные по дате создания по убыванию.
func (d *DepositRepository) GetPlansByUserID(ctx context.Context, userID int64) ([]domain.Deposit, error) {
	rows, err := d.conn.Query(ctx,
		`SELECT `+depositColumns+` FROM deposits WHERE user_id = $1 AND plan IS NOT NULL
		ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting plan deposits by userID `%d`", userID)
	}
	deposits, err := pgx.CollectRows(rows, collectDeposit)
	if err != nil {
		return nil, convertErr(err, "scanning plan deposits by userID `%d`", userID)
	}
	return deposits, nil
}

// HasVerifiedPlan сообщает, есть ли у юзера подтвержденная покупка плана с указанным (нормализованным) именем.
func (d *DepositRepository) HasVerifiedPlan(ctx context.Context, userID int64, plan string) (bool, error) {
	var exists bool
	if err := d.conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deposits WHERE user_id = $1 AND is_verified AND upper(plan) = $2)`,
		userID, plan,
	).Scan(&exists); err != nil {
		return false, convertErr(err, "checking plan `%s` of user %d", plan, userID)
	}
	return exists, nil
}

// LockUserPlan ищет подтвержденную покупку по идентификатору транзакции, юзеру и плану и блокирует строку.
func (d *DepositRepository) LockUserPlan(ctx context.Context, args repoargs.FindUserPlan) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx,
		`SELECT `+depositColumns+` FROM deposits
		WHERE transaction_id = $1 AND user_id = $2 AND upper(plan) = $3 AND is_verified
		FOR UPDATE`,
		args.TransactionID, args.UserID, args.Plan,
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "locking plan deposit `%s`", args.TransactionID)
	}
	return deposit, nil
}

// UpdateAmount меняет сумму покупки и помечает строку как исправленную администратором.
func (d *DepositRepository) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx,
		`UPDATE deposits SET amount = $2, is_updated = TRUE, updated_at = now() WHERE id = $1
		RETURNING `+depositColumns,
		id, amount,
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "updating amount of plan deposit %d", id)
	}
	return deposit, nil
}

// ListVerified страница подтвержденных покупок планов всех пользователей, старые первыми.
func (d *DepositRepository) ListVerified(ctx context.Context, page repoargs.Page) ([]domain.OwnedDeposit, error) {
	limit, limitErr := safeConvertUintToInt32(page.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	offset, offsetErr := safeConvertUintToInt32(page.Offset)
	if offsetErr != nil {
		return nil, convertErr(offsetErr, "converting offset to int32")
	}
	rows, err := d.conn.Query(ctx,
		`SELECT d.id, d.created_at, d.updated_at, d.user_id, d.amount, d.transaction_id, d.is_verified, d.plan,
			d.is_updated, u.username
		FROM deposits d JOIN users u ON u.id = d.user_id
		WHERE d.is_verified AND d.plan IS NOT NULL
		ORDER BY d.created_at ASC, d.id ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing verified plan deposits")
	}
	deposits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OwnedDeposit, error) {
		var od domain.OwnedDeposit
		err := row.Scan(
			&od.ID,
			&od.CreatedAt,
			&od.UpdatedAt,
			&od.UserID,
			&od.Amount,
			&od.TransactionID,
			&od.IsVerified,
			&od.Plan,
			&od.IsUpdated,
			&od.Username,
		)
		return od, err //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning verified plan deposits")
	}
	return deposits, nil
}

func (d *DepositRepository) CountVerified(ctx context.Context) (int64, error) {
	var count int64
	if err := d.conn.QueryRow(ctx,
		`SELECT count(*) FROM deposits WHERE is_verified AND plan IS NOT NULL`,
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting verified plan deposits")
	}
	return count, nil
}

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var dp domain.Deposit
	if err := row.Scan(
		&dp.ID,
		&dp.CreatedAt,
		&dp.UpdatedAt,
		&dp.UserID,
		&dp.Amount,
		&dp.TransactionID,
		&dp.IsVerified,
		&dp.Plan,
		&dp.IsUpdated,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &dp, nil
}

func collectDeposit(row pgx.CollectableRow) (domain.Deposit, error) {
	dp, err := scanDeposit(row)
	if err != nil {
		return domain.Deposit{}, err
	}
	return *dp, nil
}
