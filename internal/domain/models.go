package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
	Role              RoleType
}

// IsAdmin сообщает, обладает ли пользователь правами администратора.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CashTransaction денежный депозит пользователя. Status=false - ожидает подтверждения администратором,
// Status=true - подтвержден и учитывается в балансе.
type CashTransaction struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
	Status        bool
}

// Deposit запись о покупке плана. Plan == nil означает обычный денежный депозит, в текущей схеме такие строки
// хранятся в CashTransaction, поэтому в таблице deposits Plan всегда заполнен.
type Deposit struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
	IsVerified    bool
	Plan          *string
	IsUpdated     bool
}

// PlanName возвращает имя плана или пустую строку.
func (d Deposit) PlanName() string {
	if d.Plan == nil {
		return ""
	}
	return *d.Plan
}

type Withdrawal struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
	IsVerified    bool
	// IsRejected отличает отклоненный вывод от ожидающего: у обоих IsVerified == false.
	IsRejected bool
}

func (w Withdrawal) IsPending() bool {
	return !w.IsVerified && !w.IsRejected
}
