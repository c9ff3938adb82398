package repoargs

import "github.com/shopspring/decimal"

type CreateCashTransaction struct {
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
}

// CreatePlanDeposit строка покупки плана. Plan - нормализованное имя плана, строка создается подтвержденной.
type CreatePlanDeposit struct {
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
	Plan          string
}

// FindUserPlan ключ поиска подтвержденной покупки плана конкретного пользователя.
type FindUserPlan struct {
	UserID        int64
	TransactionID string
	Plan          string
}

type CreateWithdrawal struct {
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
}

type Page struct {
	Limit  uint
	Offset uint
}
