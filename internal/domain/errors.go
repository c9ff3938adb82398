package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// ErrNotFound синоним ErrRecordNotFound для сервисного слоя.
	ErrNotFound = ErrRecordNotFound

	ErrInvalidUser            = errors.New("invalid user id")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidTransactionID   = errors.New("invalid transaction id")
	ErrUnknownPlan            = errors.New("unknown plan")
	ErrAmountOutOfRange       = errors.New("amount out of plan range")
	ErrDuplicateTransactionID = errors.New("duplicate transaction id")
	ErrForbidden              = errors.New("forbidden")

	// ErrOutcomeUnknown операция прервана по таймауту, результат неизвестен. Клиент должен перезапросить
	// состояние, а не считать операцию выполненной или отмененной.
	ErrOutcomeUnknown = errors.New("operation outcome unknown")
)

type UnknownPlanError struct {
	Name      string
	Available []string
}

func (e *UnknownPlanError) Error() string {
	return fmt.Sprintf("invalid plan name %q, available plans: %v", e.Name, e.Available)
}

func (e *UnknownPlanError) Unwrap() error {
	return ErrUnknownPlan
}

type AmountOutOfRangeError struct {
	Plan   string
	Amount decimal.Decimal
	Min    decimal.Decimal
	// Max nil если верхняя граница у плана не задана.
	Max *decimal.Decimal
}

func (e *AmountOutOfRangeError) Error() string {
	if e.Amount.LessThan(e.Min) {
		return fmt.Sprintf("amount $%s is below the minimum required for %s plan: $%s",
			e.Amount.String(), e.Plan, e.Min.String())
	}
	var maxStr string
	if e.Max != nil {
		maxStr = e.Max.String()
	}
	return fmt.Sprintf("amount $%s exceeds the maximum for %s plan: $%s", e.Amount.String(), e.Plan, maxStr)
}

func (e *AmountOutOfRangeError) Unwrap() error {
	return ErrAmountOutOfRange
}
