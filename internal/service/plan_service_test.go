package service

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PlanServiceTestSuite struct {
	suite.Suite
	deps    *mockDeps
	service *PlanService
	userID  domain.UserID
}

func TestPlanServiceSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}

func (s *PlanServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.deps = newMockDeps(mockCtrl)
	s.service = NewPlanService(s.deps.mockUOW, catalog.Default(), fixedClock, func(plan string) string {
		return "PLAN-" + plan + "-FIXED"
	})
	s.userID = domain.UserID(7)
}

func (s *PlanServiceTestSuite) expectLockedLedger(cash []domain.CashTransaction, plans []domain.Deposit) {
	uid := s.userID.Int64()
	s.deps.expectDo()
	s.deps.userRepo.EXPECT().LockUserByID(gomock.Any(), uid).Return(&domain.User{ID: uid}, nil)
	s.deps.cashRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(cash, nil)
	s.deps.depositRepo.EXPECT().GetPlansByUserID(gomock.Any(), uid).Return(plans, nil)
}

func (s *PlanServiceTestSuite) TestPurchasePlan_Preconditions() {
	// ни одного обращения к хранилищу: mockUOW без ожиданий упадет на любом вызове.
	cases := []struct {
		name    string
		plan    string
		amount  *domain.Money
		wantErr error
	}{
		{name: "unknown plan", plan: "DIAMOND", wantErr: domain.ErrUnknownPlan},
		{name: "below minimum", plan: "basic", amount: moneyPtr("99.9"), wantErr: domain.ErrAmountOutOfRange},
		{name: "above maximum", plan: "SILVER", amount: moneyPtr("5000"), wantErr: domain.ErrAmountOutOfRange},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := s.service.PurchasePlan(s.T().Context(), s.userID, t.plan, t.amount)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(res)
		})
	}

	_, err := s.service.PurchasePlan(s.T().Context(), s.userID, "diamond", nil)
	var unknown *domain.UnknownPlanError
	s.Require().ErrorAs(err, &unknown)
	s.Equal([]string{"BASIC", "SILVER", "GOLD", "PLATINUM"}, unknown.Available)
}

func (s *PlanServiceTestSuite) TestPurchasePlan_InsufficientBalance() {
	s.expectLockedLedger([]domain.CashTransaction{confirmedCash(7, "150")}, nil)
	s.deps.depositRepo.EXPECT().CreatePlanDeposit(gomock.Any(), gomock.Any()).Times(0)

	res, err := s.service.PurchasePlan(s.T().Context(), s.userID, "Silver", nil)
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(domain.OutcomeInsufficientBalance, res.Outcome)
	s.Equal("1000", res.Required.String())
	s.Equal("850", res.Shortfall.String())
	s.Equal("150", res.RemainingBalance.String())
	s.Nil(res.Plan)
}

func (s *PlanServiceTestSuite) TestPurchasePlan_DuplicatePlan() {
	s.expectLockedLedger(
		[]domain.CashTransaction{confirmedCash(7, "1000")},
		[]domain.Deposit{planDeposit(1, 7, "BASIC", "100", testNow.Add(-time.Hour))},
	)
	s.deps.depositRepo.EXPECT().HasVerifiedPlan(gomock.Any(), int64(7), "BASIC").Return(true, nil)
	s.deps.depositRepo.EXPECT().CreatePlanDeposit(gomock.Any(), gomock.Any()).Times(0)

	res, err := s.service.PurchasePlan(s.T().Context(), s.userID, " basic ", nil)
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(domain.OutcomeDuplicatePlan, res.Outcome)
}

func (s *PlanServiceTestSuite) TestPurchasePlan_Success() {
	s.expectLockedLedger([]domain.CashTransaction{confirmedCash(7, "200")}, nil)
	s.deps.depositRepo.EXPECT().HasVerifiedPlan(gomock.Any(), int64(7), "BASIC").Return(false, nil)
	s.deps.depositRepo.EXPECT().CreatePlanDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.CreatePlanDeposit) (*domain.Deposit, error) {
			s.Equal(int64(7), args.UserID)
			s.Equal("100", args.Amount.String())
			s.Equal("PLAN-BASIC-FIXED", args.TransactionID)
			s.Equal("BASIC", args.Plan)
			row := planDeposit(11, args.UserID, args.Plan, args.Amount.String(), testNow)
			row.TransactionID = args.TransactionID
			return &row, nil
		})

	res, err := s.service.PurchasePlan(s.T().Context(), s.userID, "basic", nil)
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(domain.OutcomeOK, res.Outcome)
	s.Equal("100", res.RemainingBalance.String())
	s.Require().NotNil(res.Plan)
	s.Equal(int64(11), res.Plan.ID)
	s.Equal("BASIC", res.Plan.PlanName)
	s.Equal("PLAN-BASIC-FIXED", res.Plan.TransactionID)
	s.Equal("110", res.Plan.ExpectedReturn.String())
	s.Equal(30*24*time.Hour, res.Plan.Duration)
}

func (s *PlanServiceTestSuite) TestPurchasePlan_CustomAmount() {
	s.expectLockedLedger([]domain.CashTransaction{confirmedCash(7, "5000")}, nil)
	s.deps.depositRepo.EXPECT().HasVerifiedPlan(gomock.Any(), int64(7), "SILVER").Return(false, nil)
	s.deps.depositRepo.EXPECT().CreatePlanDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.CreatePlanDeposit) (*domain.Deposit, error) {
			row := planDeposit(12, args.UserID, args.Plan, args.Amount.String(), testNow)
			return &row, nil
		})

	res, err := s.service.PurchasePlan(s.T().Context(), s.userID, "SILVER", moneyPtr("2500"))
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal("2500", res.Plan.Amount.String())
	s.Equal("2875", res.Plan.ExpectedReturn.String())
	s.Equal("2500", res.RemainingBalance.String())
}

func (s *PlanServiceTestSuite) TestPurchasePlan_DuplicateTransactionID() {
	s.expectLockedLedger([]domain.CashTransaction{confirmedCash(7, "200")}, nil)
	s.deps.depositRepo.EXPECT().HasVerifiedPlan(gomock.Any(), int64(7), "BASIC").Return(false, nil)
	s.deps.depositRepo.EXPECT().CreatePlanDeposit(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateTransactionID)

	res, err := s.service.PurchasePlan(s.T().Context(), s.userID, "BASIC", nil)
	s.Require().ErrorIs(err, domain.ErrDuplicateTransactionID)
	s.Nil(res)
}

func (s *PlanServiceTestSuite) TestUserPlans() {
	uid := s.userID.Int64()
	s.deps.expectView()
	s.deps.depositRepo.EXPECT().GetPlansByUserID(gomock.Any(), uid).Return([]domain.Deposit{
		planDeposit(1, uid, "BASIC", "100", testNow.Add(-31*24*time.Hour)),
		planDeposit(2, uid, "GOLD", "5000", testNow.Add(-time.Hour)),
		planDeposit(3, uid, "RETIRED", "10", testNow),
	}, nil)

	plans, err := s.service.UserPlans(s.T().Context(), s.userID, testNow)
	s.Require().NoError(err)
	s.Require().Len(plans, 3)

	s.True(plans[0].KnownPlan)
	s.True(plans[0].IsMatured)
	s.Equal("110", plans[0].ExpectedReturn.String())

	s.False(plans[1].IsMatured)
	s.Equal("6250", plans[1].ExpectedReturn.String())

	s.False(plans[2].KnownPlan)
}

func (s *PlanServiceTestSuite) TestListAvailablePlans() {
	plans := s.service.ListAvailablePlans()
	s.Require().Len(plans, 4)
	s.Equal("BASIC", plans[0].Name)
	s.Equal(int64(30), plans[0].DurationDays)
	s.Nil(plans[3].MaxAmount)
}

func moneyPtr(v string) *domain.Money {
	m := domain.MustMoney(dec(v))
	return &m
}
