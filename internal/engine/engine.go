// Package engine чистые функции расчета баланса, начислений и итогового расчета. Все функции работают над
// снимком записей, прочитанным из хранилища, и не изменяют его.
//
// Внутренние вычисления идут с полной точностью decimal, округление до десятых делается один раз
// на выходе публичной функции.
package engine

import (
	"time"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ten       = decimal.NewFromInt(10)
	half      = decimal.RequireFromString("0.5")
	hourMilli = decimal.NewFromInt(time.Hour.Milliseconds())
)

// PlanSource источник определений планов.
type PlanSource interface {
	Lookup(name string) (catalog.Plan, error)
}

// RoundTenths округляет до одного знака после запятой, половина округляется вверх: floor(x*10 + 0.5) / 10.
func RoundTenths(d decimal.Decimal) decimal.Decimal {
	return d.Mul(ten).Add(half).Floor().Shift(-1)
}

// WalletBalanceOf считает баланс кошелька по денежным транзакциям и покупкам планов пользователя.
func WalletBalanceOf(userID int64, cash []domain.CashTransaction, plans []domain.Deposit) domain.WalletBalance {
	balance := domain.WalletBalance{
		UserID:           userID,
		TotalDeposited:   decimal.Zero,
		ConfirmedBalance: decimal.Zero,
		PendingBalance:   decimal.Zero,
		AvailableBalance: decimal.Zero,
	}
	for _, t := range cash {
		balance.TotalDeposited = balance.TotalDeposited.Add(t.Amount)
		if t.Status {
			balance.ConfirmedBalance = balance.ConfirmedBalance.Add(t.Amount)
		} else {
			balance.PendingBalance = balance.PendingBalance.Add(t.Amount)
		}
	}

	spent := LockedInPlans(plans)
	available := balance.ConfirmedBalance.Sub(spent)
	if available.IsNegative() {
		available = decimal.Zero
	}
	balance.AvailableBalance = available
	return balance
}

// LockedInPlans сумма всех покупок планов.
func LockedInPlans(plans []domain.Deposit) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range plans {
		if p.Plan == nil {
			continue
		}
		sum = sum.Add(p.Amount)
	}
	return sum
}

// qualifying возвращает план строки, если строка участвует в начислениях: подтверждена и ссылается на
// известный каталогу план.
func qualifying(row domain.Deposit, plans PlanSource) (catalog.Plan, bool) {
	if !row.IsVerified || row.Plan == nil {
		return catalog.Plan{}, false
	}
	p, err := plans.Lookup(*row.Plan)
	if err != nil {
		return catalog.Plan{}, false
	}
	return p, true
}

// elapsed время с момента покупки. Запись "из будущего" (рассинхрон часов) считается только что созданной.
func elapsed(row domain.Deposit, now time.Time) time.Duration {
	e := now.Sub(row.CreatedAt)
	if e < 0 {
		return 0
	}
	return e
}

// accruedValue стоимость одной активной строки: principal + principal * полные_часы * часовая_ставка,
// где часовая ставка = ReturnRate / (Duration / 1h). Погашенная строка дает 0.
func accruedValue(row domain.Deposit, p catalog.Plan, now time.Time) decimal.Decimal {
	e := elapsed(row, now)
	if e >= p.Duration {
		return decimal.Zero
	}
	hours := decimal.NewFromInt(int64(e / time.Hour))
	accrued := row.Amount.
		Mul(p.ReturnRate).
		Mul(hours).
		Mul(hourMilli).
		Div(decimal.NewFromInt(p.Duration.Milliseconds()))
	return row.Amount.Add(accrued)
}

// ActiveInvestmentValue текущая стоимость активных (не погашенных) планов на момент now.
func ActiveInvestmentValue(rows []domain.Deposit, plans PlanSource, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		p, ok := qualifying(row, plans)
		if !ok {
			continue
		}
		total = total.Add(accruedValue(row, p, now))
	}
	return RoundTenths(total)
}

// maturityPeriods число начисляемых периодов при погашении. Модель одного события погашения: доход
// начисляется ровно один раз, сколько бы сроков ни прошло.
func maturityPeriods(catalog.Plan) decimal.Decimal {
	return decimal.NewFromInt(1)
}

func maturedSum(rows []domain.Deposit, plans PlanSource, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		p, ok := qualifying(row, plans)
		if !ok {
			continue
		}
		if elapsed(row, now) < p.Duration {
			total = total.Add(row.Amount)
			continue
		}
		ret := row.Amount.Mul(p.ReturnRate).Mul(maturityPeriods(p))
		total = total.Add(row.Amount.Add(ret))
	}
	return total
}

// MaturedValue сумма к расчету: по непогашенным планам - тело, по погашенным - тело плюс доход.
func MaturedValue(rows []domain.Deposit, plans PlanSource, now time.Time) decimal.Decimal {
	return RoundTenths(maturedSum(rows, plans, now))
}

// TotalVerifiedWithdrawals сумма подтвержденных выводов.
func TotalVerifiedWithdrawals(withdrawals []domain.Withdrawal) decimal.Decimal {
	sum := decimal.Zero
	for _, w := range withdrawals {
		if w.IsVerified {
			sum = sum.Add(w.Amount)
		}
	}
	return sum
}

// TotalPendingWithdrawals сумма выводов, ожидающих решения администратора.
func TotalPendingWithdrawals(withdrawals []domain.Withdrawal) decimal.Decimal {
	sum := decimal.Zero
	for _, w := range withdrawals {
		if w.IsPending() {
			sum = sum.Add(w.Amount)
		}
	}
	return sum
}

// FinalBalance итоговый баланс: округленный MaturedValue минус подтвержденные выводы.
func FinalBalance(
	rows []domain.Deposit,
	plans PlanSource,
	withdrawals []domain.Withdrawal,
	now time.Time,
) decimal.Decimal {
	return RoundTenths(MaturedValue(rows, plans, now).Sub(TotalVerifiedWithdrawals(withdrawals)))
}

// Withdrawable сумма, которую можно запросить к выводу: итоговый баланс за вычетом ожидающих выводов.
func Withdrawable(
	rows []domain.Deposit,
	plans PlanSource,
	withdrawals []domain.Withdrawal,
	now time.Time,
) decimal.Decimal {
	reserved := TotalVerifiedWithdrawals(withdrawals).Add(TotalPendingWithdrawals(withdrawals))
	w := RoundTenths(MaturedValue(rows, plans, now).Sub(reserved))
	if w.IsNegative() {
		return decimal.Zero
	}
	return w
}
