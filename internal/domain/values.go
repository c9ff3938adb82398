package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxTransactionIDLength при увеличении значения нужна миграция на длину поля transaction_id.
	MaxTransactionIDLength = 100
)

// MaxAmount верхний предел суммы одной операции.
var MaxAmount = decimal.NewFromInt(1_000_000)

// UserID проверенный идентификатор пользователя. Создается только через NewUserID.
type UserID int64

// NewUserID возвращает ErrInvalidUser для неположительных значений.
func NewUserID(id int64) (UserID, error) {
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidUser, id)
	}
	return UserID(id), nil
}

func (u UserID) Int64() int64 {
	return int64(u)
}

// Money проверенная денежная сумма: строго больше нуля и не больше MaxAmount.
type Money struct {
	value decimal.Decimal
}

// NewMoney возвращает ErrInvalidAmount если сумма вне диапазона (0, MaxAmount].
func NewMoney(d decimal.Decimal) (Money, error) {
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("%w: amount must be greater than 0", ErrInvalidAmount)
	}
	if d.GreaterThan(MaxAmount) {
		return Money{}, fmt.Errorf("%w: amount exceeds maximum allowed limit", ErrInvalidAmount)
	}
	return Money{value: d}, nil
}

// MustMoney паникует на невалидной сумме. Только для констант и тестов.
func MustMoney(d decimal.Decimal) Money {
	m, err := NewMoney(d)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) String() string {
	return m.value.String()
}

// TransactionID внешний идентификатор операции, уникальный в рамках всего хранилища.
type TransactionID string

// NewTransactionID обрезает пробелы и проверяет длину.
func NewTransactionID(raw string) (TransactionID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: transaction id is required", ErrInvalidTransactionID)
	}
	if len(trimmed) > MaxTransactionIDLength {
		return "", fmt.Errorf("%w: transaction id is too long", ErrInvalidTransactionID)
	}
	return TransactionID(trimmed), nil
}

func (t TransactionID) String() string {
	return string(t)
}
