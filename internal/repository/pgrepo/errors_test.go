package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantErr: domain.ErrRecordNotFound},
		{
			name:    "wrapped no rows",
			err:     fmt.Errorf("scan: %w", pgx.ErrNoRows),
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "registry violation",
			err:     &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: transactionIDsPKey},
			wantErr: domain.ErrDuplicateTransactionID,
		},
		{
			name:    "table index violation",
			err:     &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "deposits_transaction_id_key"},
			wantErr: domain.ErrDuplicateTransactionID,
		},
		{
			name:    "username violation",
			err:     &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_username_key"},
			wantErr: domain.ErrDuplicateKey,
		},
		{name: "other pg error", err: &pgconn.PgError{Code: "23503"}, wantErr: domain.ErrUnknown},
		{
			name:    "deadline",
			err:     fmt.Errorf("query: %w", context.DeadlineExceeded),
			wantErr: context.DeadlineExceeded,
		},
		{name: "plain error", err: errors.New("boom"), wantErr: domain.ErrUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := convertErr(tc.err, "op %d", 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), "[repository/op 1]")
		})
	}

	assert.NoError(t, convertErr(nil, "noop"))
	assert.NotErrorIs(t, convertErr(&pgconn.PgError{Code: uniqueViolationCode}, "x"), domain.ErrDuplicateTransactionID)
}
