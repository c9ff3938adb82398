package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, created_at, updated_at, user_id, amount, transaction_id, is_verified, is_rejected`

type WithdrawalRepository struct {
	conn uow.DBTX
}

func NewWithdrawalRepository(conn uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{conn: conn}
}

func (w *WithdrawalRepository) Create(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error) {
	row := w.conn.QueryRow(ctx,
		`WITH reg AS (
			INSERT INTO transaction_ids (transaction_id, kind) VALUES ($3, 'WITHDRAWAL') RETURNING transaction_id
		)
		INSERT INTO withdrawals (user_id, amount, transaction_id)
		SELECT $1, $2, reg.transaction_id FROM reg
		RETURNING `+withdrawalColumns,
		args.UserID, args.Amount, args.TransactionID,
	)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "creating withdrawal `%s`", args.TransactionID)
	}
	return withdrawal, nil
}

// GetByUserID возвращает выводы юзера, отсортированные по дате создания по убыванию.
func (w *WithdrawalRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Withdrawal, error) {
	rows, err := w.conn.Query(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting withdrawals by userID `%d`", userID)
	}
	withdrawals, err := pgx.CollectRows(rows, collectWithdrawal)
	if err != nil {
		return nil, convertErr(err, "scanning withdrawals by userID `%d`", userID)
	}
	return withdrawals, nil
}

func (w *WithdrawalRepository) LockByTransactionID(ctx context.Context, transactionID string) (*domain.Withdrawal, error) {
	row := w.conn.QueryRow(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE transaction_id = $1 FOR UPDATE`,
		transactionID,
	)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "locking withdrawal `%s`", transactionID)
	}
	return withdrawal, nil
}

// SetVerified подтверждает (verified=true) или отклоняет (verified=false) вывод.
func (w *WithdrawalRepository) SetVerified(ctx context.Context, id int64, verified bool) (*domain.Withdrawal, error) {
	row := w.conn.QueryRow(ctx,
		`UPDATE withdrawals SET is_verified = $2, is_rejected = NOT $2, updated_at = now() WHERE id = $1
		RETURNING `+withdrawalColumns,
		id, verified,
	)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "updating withdrawal %d", id)
	}
	return withdrawal, nil
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	if err := row.Scan(
		&wd.ID,
		&wd.CreatedAt,
		&wd.UpdatedAt,
		&wd.UserID,
		&wd.Amount,
		&wd.TransactionID,
		&wd.IsVerified,
		&wd.IsRejected,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &wd, nil
}

func collectWithdrawal(row pgx.CollectableRow) (domain.Withdrawal, error) {
	wd, err := scanWithdrawal(row)
	if err != nil {
		return domain.Withdrawal{}, err
	}
	return *wd, nil
}
