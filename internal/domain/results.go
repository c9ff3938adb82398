package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletBalance struct {
	UserID           int64
	TotalDeposited   decimal.Decimal
	ConfirmedBalance decimal.Decimal
	PendingBalance   decimal.Decimal
	AvailableBalance decimal.Decimal
}

// PurchasedPlan детали купленного плана.
type PurchasedPlan struct {
	ID             int64
	PlanName       string
	Amount         decimal.Decimal
	TransactionID  string
	Duration       time.Duration
	ReturnRate     decimal.Decimal
	ExpectedReturn decimal.Decimal
	CreatedAt      time.Time
}

// PurchaseResult результат покупки плана. При Outcome == OutcomeInsufficientBalance заполнены Required и
// Shortfall, Plan == nil при любом отказе.
type PurchaseResult struct {
	Success          bool
	Outcome          OutcomeType
	Message          string
	Plan             *PurchasedPlan
	RemainingBalance decimal.Decimal
	Required         decimal.Decimal
	Shortfall        decimal.Decimal
}

type VerificationResult struct {
	Success        bool
	Outcome        OutcomeType
	Message        string
	TransactionID  string
	NewStatus      bool
	AffectedUserID int64
}

type AmendedPlan struct {
	ID                int64
	PlanName          string
	PreviousAmount    decimal.Decimal
	NewAmount         decimal.Decimal
	AmountDifference  decimal.Decimal
	TransactionID     string
	Duration          time.Duration
	ReturnRate        decimal.Decimal
	NewExpectedReturn decimal.Decimal
	UpdatedAt         time.Time
}

type AmendResult struct {
	Success         bool
	Outcome         OutcomeType
	Message         string
	UpdatedPlan     *AmendedPlan
	UserBalance     decimal.Decimal
	UserName        string
	CurrentAmount   decimal.Decimal
	RequestedAmount decimal.Decimal
}

type AmendPlanArgs struct {
	UserName      string
	TransactionID TransactionID
	NewAmount     Money
	PlanName      string
	AdminID       UserID
}

type DepositResult struct {
	Transaction *CashTransaction
	Message     string
}

type WithdrawalResult struct {
	Success    bool
	Outcome    OutcomeType
	Message    string
	Withdrawal *Withdrawal
	// Withdrawable сумма, доступная к выводу на момент проверки.
	Withdrawable decimal.Decimal
}

// UserPlan строка купленного плана, обогащенная данными каталога.
type UserPlan struct {
	Deposit
	Duration       time.Duration
	ReturnRate     decimal.Decimal
	ExpectedReturn decimal.Decimal
	IsMatured      bool
	// KnownPlan false если плана с таким именем больше нет в каталоге.
	KnownPlan bool
}

type PendingDepositsPage struct {
	Transactions []CashTransaction
	TotalCount   int64
	HasMore      bool
}

// OwnedDeposit подтвержденная покупка плана вместе с логином владельца.
type OwnedDeposit struct {
	Deposit
	Username string
}

type VerifiedDepositsPage struct {
	Deposits   []OwnedDeposit
	TotalCount int64
	HasMore    bool
}
