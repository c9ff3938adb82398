package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const cashColumns = `id, created_at, updated_at, user_id, amount, transaction_id, status`

type CashTransactionRepository struct {
	conn uow.DBTX
}

func NewCashTransactionRepository(conn uow.DBTX) *CashTransactionRepository {
	return &CashTransactionRepository{conn: conn}
}

// Create создает ожидающий подтверждения депозит. Идентификатор сначала регистрируется в transaction_ids,
// повтор возвращает domain.ErrDuplicateTransactionID.
func (c *CashTransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateCashTransaction,
) (*domain.CashTransaction, error) {
	row := c.conn.QueryRow(ctx,
		`WITH reg AS (
			INSERT INTO transaction_ids (transaction_id, kind) VALUES ($3, 'CASH') RETURNING transaction_id
		)
		INSERT INTO cash_transactions (user_id, amount, transaction_id, status)
		SELECT $1, $2, reg.transaction_id, FALSE FROM reg
		RETURNING `+cashColumns,
		args.UserID, args.Amount, args.TransactionID,
	)
	trans, err := scanCashTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating cash transaction `%s`", args.TransactionID)
	}
	return trans, nil
}

// GetByUserID возвращает денежные транзакции юзера, отсортированные по дате создания по убыванию.
func (c *CashTransactionRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.CashTransaction, error) {
	rows, err := c.conn.Query(ctx,
		`SELECT `+cashColumns+` FROM cash_transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting cash transactions by userID `%d`", userID)
	}
	transactions, err := pgx.CollectRows(rows, collectCashTransaction)
	if err != nil {
		return nil, convertErr(err, "scanning cash transactions by userID `%d`", userID)
	}
	return transactions, nil
}

// LockByTransactionID ищет транзакцию по внешнему идентификатору и блокирует строку.
func (c *CashTransactionRepository) LockByTransactionID(
	ctx context.Context,
	transactionID string,
) (*domain.CashTransaction, error) {
	row := c.conn.QueryRow(ctx,
		`SELECT `+cashColumns+` FROM cash_transactions WHERE transaction_id = $1 FOR UPDATE`,
		transactionID,
	)
	trans, err := scanCashTransaction(row)
	if err != nil {
		return nil, convertErr(err, "locking cash transaction `%s`", transactionID)
	}
	return trans, nil
}

func (c *CashTransactionRepository) SetStatus(
	ctx context.Context,
	id int64,
	status bool,
) (*domain.CashTransaction, error) {
	row := c.conn.QueryRow(ctx,
		`UPDATE cash_transactions SET status = $2, updated_at = now() WHERE id = $1 RETURNING `+cashColumns,
		id, status,
	)
	trans, err := scanCashTransaction(row)
	if err != nil {
		return nil, convertErr(err, "updating status of cash transaction %d", id)
	}
	return trans, nil
}

// GetPending страница ожидающих подтверждения депозитов, старые первыми.
func (c *CashTransactionRepository) GetPending(
	ctx context.Context,
	page repoargs.Page,
) ([]domain.CashTransaction, error) {
	limit, limitErr := safeConvertUintToInt32(page.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	offset, offsetErr := safeConvertUintToInt32(page.Offset)
	if offsetErr != nil {
		return nil, convertErr(offsetErr, "converting offset to int32")
	}
	rows, err := c.conn.Query(ctx,
		`SELECT `+cashColumns+` FROM cash_transactions WHERE status = FALSE
		ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "getting pending cash transactions")
	}
	transactions, err := pgx.CollectRows(rows, collectCashTransaction)
	if err != nil {
		return nil, convertErr(err, "scanning pending cash transactions")
	}
	return transactions, nil
}

func (c *CashTransactionRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := c.conn.QueryRow(ctx, `SELECT count(*) FROM cash_transactions WHERE status = FALSE`).
		Scan(&count); err != nil {
		return 0, convertErr(err, "counting pending cash transactions")
	}
	return count, nil
}

func scanCashTransaction(row pgx.Row) (*domain.CashTransaction, error) {
	var t domain.CashTransaction
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.UserID, &t.Amount, &t.TransactionID, &t.Status); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}

func collectCashTransaction(row pgx.CollectableRow) (domain.CashTransaction, error) {
	t, err := scanCashTransaction(row)
	if err != nil {
		return domain.CashTransaction{}, err
	}
	return *t, nil
}
