package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"
	// transactionIDsPKey первичный ключ реестра transaction_ids.
	transactionIDsPKey = "transaction_ids_pkey"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (pgx.ErrNoRows) возвращает ErrRecordNotFound из domain.
//   - Нарушение уникальности transaction_id (реестр или индексы *_transaction_id_key) - ErrDuplicateTransactionID.
//   - Остальные нарушения уникальности - ErrDuplicateKey.
//   - Ошибки отмены и таймаута контекста сохраняются в цепочке, сервис отличает их от ошибок базы.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("[repository/%s] %w", msg, err)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) && isUniqueViolationErr(pgErr) {
		errType = domain.ErrDuplicateKey
		if isTransactionIDConstraint(pgErr.ConstraintName) {
			errType = domain.ErrDuplicateTransactionID
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}

func isTransactionIDConstraint(name string) bool {
	return name == transactionIDsPKey || strings.HasSuffix(name, "_transaction_id_key")
}
