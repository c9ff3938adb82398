package engine

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
	plans     *catalog.Catalog
	purchased time.Time
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.plans = catalog.Default()
	s.purchased = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func planRow(plan string, amount int64, createdAt time.Time) domain.Deposit {
	return domain.Deposit{
		ID:            1,
		CreatedAt:     createdAt,
		UserID:        1,
		Amount:        decimal.NewFromInt(amount),
		TransactionID: "PLAN-" + plan,
		IsVerified:    true,
		Plan:          &plan,
	}
}

func (s *EngineTestSuite) TestRoundTenths() {
	cases := []struct {
		in   string
		want string
	}{
		{in: "105", want: "105"},
		{in: "104.94", want: "104.9"},
		{in: "104.95", want: "105"},
		{in: "0.05", want: "0.1"},
		{in: "-0.25", want: "-0.2"},
		{in: "-0.26", want: "-0.3"},
		{in: "1.04999999", want: "1"},
	}
	for _, t := range cases {
		s.Run(t.in, func() {
			got := RoundTenths(decimal.RequireFromString(t.in))
			s.True(decimal.RequireFromString(t.want).Equal(got), "got %s", got)
		})
	}
}

func (s *EngineTestSuite) TestWalletBalanceOf() {
	cash := []domain.CashTransaction{
		{Amount: decimal.NewFromInt(200), Status: true},
		{Amount: decimal.NewFromInt(50), Status: false},
		{Amount: decimal.RequireFromString("10.5"), Status: true},
	}
	plans := []domain.Deposit{planRow("BASIC", 100, s.purchased)}

	balance := WalletBalanceOf(7, cash, plans)
	s.Equal(int64(7), balance.UserID)
	s.True(balance.TotalDeposited.Equal(decimal.RequireFromString("260.5")))
	s.True(balance.ConfirmedBalance.Equal(decimal.RequireFromString("210.5")))
	s.True(balance.PendingBalance.Equal(decimal.NewFromInt(50)))
	s.True(balance.AvailableBalance.Equal(decimal.RequireFromString("110.5")))
}

func (s *EngineTestSuite) TestWalletBalanceOf_NeverNegative() {
	// подтверждение депозита отозвано после покупки плана.
	cash := []domain.CashTransaction{{Amount: decimal.NewFromInt(200), Status: false}}
	plans := []domain.Deposit{planRow("BASIC", 100, s.purchased)}

	balance := WalletBalanceOf(1, cash, plans)
	s.True(balance.AvailableBalance.IsZero())
	s.True(balance.PendingBalance.Equal(decimal.NewFromInt(200)))
}

// TestEndToEndExample BASIC: 100, 10%, 30 дней.
func (s *EngineTestSuite) TestEndToEndExample() {
	rows := []domain.Deposit{planRow("BASIC", 100, s.purchased)}

	mid := s.purchased.Add(15 * 24 * time.Hour)
	s.Equal("105", ActiveInvestmentValue(rows, s.plans, mid).String())
	s.Equal("100", MaturedValue(rows, s.plans, mid).String())

	after := s.purchased.Add(31 * 24 * time.Hour)
	s.True(ActiveInvestmentValue(rows, s.plans, after).IsZero())
	s.Equal("110", MaturedValue(rows, s.plans, after).String())
}

func (s *EngineTestSuite) TestActiveInvestmentValue_Monotonic() {
	rows := []domain.Deposit{
		planRow("BASIC", 333, s.purchased),
		planRow("GOLD", 7777, s.purchased.Add(-10*24*time.Hour)),
	}
	basic, err := s.plans.Lookup("BASIC")
	s.Require().NoError(err)

	prev := decimal.Zero
	for now := s.purchased; now.Before(s.purchased.Add(basic.Duration)); now = now.Add(7 * time.Hour) {
		v := ActiveInvestmentValue(rows, s.plans, now)
		s.False(v.LessThan(prev), "value decreased at %s: %s < %s", now, v, prev)
		prev = v
	}

	// на момент погашения BASIC его вклад становится нулевым.
	atMaturity := ActiveInvestmentValue(rows[:1], s.plans, s.purchased.Add(basic.Duration))
	s.True(atMaturity.IsZero())
}

func (s *EngineTestSuite) TestActiveInvestmentValue_PartialHour() {
	rows := []domain.Deposit{planRow("BASIC", 720, s.purchased)}

	// 59 минут - ни одного полного часа, начислений нет.
	s.Equal("720", ActiveInvestmentValue(rows, s.plans, s.purchased.Add(59*time.Minute)).String())
	// 1 час: 720 * 0.10 / 720 = 0.1
	s.Equal("720.1", ActiveInvestmentValue(rows, s.plans, s.purchased.Add(time.Hour)).String())
}

func (s *EngineTestSuite) TestActiveInvestmentValue_SkipsNonQualifying() {
	unknown := planRow("DIAMOND", 1000, s.purchased)
	unverified := planRow("BASIC", 1000, s.purchased)
	unverified.IsVerified = false
	cash := domain.Deposit{Amount: decimal.NewFromInt(1000), IsVerified: true, CreatedAt: s.purchased}

	rows := []domain.Deposit{unknown, unverified, cash}
	now := s.purchased.Add(24 * time.Hour)
	s.True(ActiveInvestmentValue(rows, s.plans, now).IsZero())
	s.True(MaturedValue(rows, s.plans, now).IsZero())
}

func (s *EngineTestSuite) TestActiveInvestmentValue_FutureRow() {
	rows := []domain.Deposit{planRow("BASIC", 100, s.purchased.Add(time.Hour))}
	s.Equal("100", ActiveInvestmentValue(rows, s.plans, s.purchased).String())
}

func (s *EngineTestSuite) TestDeterminism() {
	rows := []domain.Deposit{
		planRow("BASIC", 123, s.purchased),
		planRow("SILVER", 1234, s.purchased.Add(-time.Hour)),
		planRow("GOLD", 5555, s.purchased.Add(-48*time.Hour)),
	}
	now := s.purchased.Add(101*time.Hour + 17*time.Minute)
	first := ActiveInvestmentValue(rows, s.plans, now)
	for range 20 {
		s.Equal(first.String(), ActiveInvestmentValue(rows, s.plans, now).String())
	}
}

func (s *EngineTestSuite) TestFinalBalance() {
	rows := []domain.Deposit{planRow("BASIC", 100, s.purchased)}
	withdrawals := []domain.Withdrawal{
		{Amount: decimal.NewFromInt(30), IsVerified: true},
		{Amount: decimal.NewFromInt(50)},
		{Amount: decimal.NewFromInt(70), IsRejected: true},
	}
	after := s.purchased.Add(31 * 24 * time.Hour)

	s.True(TotalVerifiedWithdrawals(withdrawals).Equal(decimal.NewFromInt(30)))
	s.True(TotalPendingWithdrawals(withdrawals).Equal(decimal.NewFromInt(50)))
	s.Equal("80", FinalBalance(rows, s.plans, withdrawals, after).String())
	s.Equal("30", Withdrawable(rows, s.plans, withdrawals, after).String())

	// до погашения выводы больше тела: итог отрицательный, доступно к выводу 0.
	before := s.purchased.Add(time.Hour)
	big := []domain.Withdrawal{{Amount: decimal.NewFromInt(150), IsVerified: true}}
	s.Equal("-50", FinalBalance(rows, s.plans, big, before).String())
	s.True(Withdrawable(rows, s.plans, big, before).IsZero())
}

func (s *EngineTestSuite) TestFinalBalance_SubtractsFromRoundedMaturedValue() {
	rows := []domain.Deposit{planRow("BASIC", 0, s.purchased)}
	rows[0].Amount = decimal.RequireFromString("100.5")
	withdrawals := []domain.Withdrawal{{Amount: decimal.RequireFromString("0.05"), IsVerified: true}}
	after := s.purchased.Add(31 * 24 * time.Hour)

	// 100.5 * 1.1 = 110.55 -> 110.6; 110.6 - 0.05 = 110.55 -> 110.6
	s.Equal("110.6", MaturedValue(rows, s.plans, after).String())
	s.Equal("110.6", FinalBalance(rows, s.plans, withdrawals, after).String())
	s.Equal("110.6", Withdrawable(rows, s.plans, withdrawals, after).String())
}
