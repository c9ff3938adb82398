package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	suite.Suite
	deps    *mockDeps
	service *WalletService
	userID  domain.UserID
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.deps = newMockDeps(mockCtrl)
	s.service = NewWalletService(s.deps.mockUOW, catalog.Default(), fixedClock)

	userID, err := domain.NewUserID(int64(gofakeit.IntRange(1, 1000)))
	s.Require().NoError(err)
	s.userID = userID
}

func (s *WalletServiceTestSuite) TestGetWalletBalance() {
	uid := s.userID.Int64()
	s.deps.expectView()
	s.deps.cashRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return([]domain.CashTransaction{
		confirmedCash(uid, "200"),
		{UserID: uid, Amount: dec("75"), Status: false},
	}, nil)
	s.deps.depositRepo.EXPECT().GetPlansByUserID(gomock.Any(), uid).Return([]domain.Deposit{
		planDeposit(1, uid, "BASIC", "100", testNow),
	}, nil)

	balance, err := s.service.GetWalletBalance(s.T().Context(), s.userID)
	s.Require().NoError(err)
	s.Equal(uid, balance.UserID)
	s.Equal("275", balance.TotalDeposited.String())
	s.Equal("200", balance.ConfirmedBalance.String())
	s.Equal("75", balance.PendingBalance.String())
	s.Equal("100", balance.AvailableBalance.String())
}

func (s *WalletServiceTestSuite) TestGetWalletBalance_RepoError() {
	s.deps.expectView()
	s.deps.cashRepo.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnknown)

	_, err := s.service.GetWalletBalance(s.T().Context(), s.userID)
	s.Require().ErrorIs(err, domain.ErrUnknown)
	s.NotErrorIs(err, domain.ErrOutcomeUnknown)
}

func (s *WalletServiceTestSuite) TestGetWalletBalance_Deadline() {
	s.deps.mockUOW.EXPECT().View(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

	_, err := s.service.GetWalletBalance(s.T().Context(), s.userID)
	s.Require().ErrorIs(err, domain.ErrOutcomeUnknown)
}

func (s *WalletServiceTestSuite) TestAccrualValues() {
	uid := s.userID.Int64()
	rows := []domain.Deposit{planDeposit(1, uid, "BASIC", "100", testNow)}
	s.deps.expectView().Times(2)
	s.deps.depositRepo.EXPECT().GetPlansByUserID(gomock.Any(), uid).Return(rows, nil).Times(2)

	day15 := testNow.Add(15 * 24 * time.Hour)
	active, err := s.service.ActiveInvestmentValue(s.T().Context(), s.userID, day15)
	s.Require().NoError(err)
	s.Equal("105", active.String())

	matured, err := s.service.MaturedValue(s.T().Context(), s.userID, testNow.Add(31*24*time.Hour))
	s.Require().NoError(err)
	s.Equal("110", matured.String())
}

func (s *WalletServiceTestSuite) TestFinalBalance() {
	uid := s.userID.Int64()
	// план куплен 40 дней назад и уже погашен.
	purchased := testNow.Add(-40 * 24 * time.Hour)
	s.deps.expectView()
	s.deps.depositRepo.EXPECT().GetPlansByUserID(gomock.Any(), uid).
		Return([]domain.Deposit{planDeposit(1, uid, "BASIC", "100", purchased)}, nil)
	s.deps.withdrawalRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return([]domain.Withdrawal{
		{Amount: dec("25.55"), IsVerified: true},
		{Amount: dec("50")},
	}, nil)

	final, err := s.service.FinalBalance(s.T().Context(), s.userID)
	s.Require().NoError(err)
	// 110 - 25.55 = 84.45 -> 84.5
	s.Equal("84.5", final.String())
}

func (s *WalletServiceTestSuite) TestCreateDeposit() {
	uid := s.userID.Int64()
	amount := domain.MustMoney(dec("250"))
	txID, err := domain.NewTransactionID(" " + gofakeit.UUID() + " ")
	s.Require().NoError(err)

	s.Run("ok", func() {
		s.deps.expectDo()
		s.deps.userRepo.EXPECT().FindUserByID(gomock.Any(), uid).Return(&domain.User{ID: uid}, nil)
		s.deps.cashRepo.EXPECT().Create(gomock.Any(), repoargs.CreateCashTransaction{
			UserID:        uid,
			Amount:        amount.Decimal(),
			TransactionID: txID.String(),
		}).Return(&domain.CashTransaction{ID: 1, UserID: uid, Amount: amount.Decimal(), TransactionID: txID.String()}, nil)

		res, createErr := s.service.CreateDeposit(s.T().Context(), s.userID, amount, txID)
		s.Require().NoError(createErr)
		s.False(res.Transaction.Status)
		s.Contains(res.Message, "Awaiting admin confirmation")
	})

	s.Run("duplicate transaction id", func() {
		s.deps.expectDo()
		s.deps.userRepo.EXPECT().FindUserByID(gomock.Any(), uid).Return(&domain.User{ID: uid}, nil)
		s.deps.cashRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateTransactionID)

		_, createErr := s.service.CreateDeposit(s.T().Context(), s.userID, amount, txID)
		s.Require().ErrorIs(createErr, domain.ErrDuplicateTransactionID)
	})

	s.Run("unknown user", func() {
		s.deps.expectDo()
		s.deps.userRepo.EXPECT().FindUserByID(gomock.Any(), uid).Return(nil, domain.ErrRecordNotFound)
		s.deps.cashRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, createErr := s.service.CreateDeposit(s.T().Context(), s.userID, amount, txID)
		s.Require().ErrorIs(createErr, domain.ErrNotFound)
	})
}

func (s *WalletServiceTestSuite) TestRequestWithdrawal() {
	uid := s.userID.Int64()
	purchased := testNow.Add(-40 * 24 * time.Hour)
	rows := []domain.Deposit{planDeposit(1, uid, "BASIC", "100", purchased)}
	withdrawals := []domain.Withdrawal{
		{Amount: dec("30"), IsVerified: true},
		{Amount: dec("50")},
		{Amount: dec("1000"), IsRejected: true},
	}
	txID, err := domain.NewTransactionID("WD-" + gofakeit.UUID())
	s.Require().NoError(err)

	cases := []struct {
		name        string
		amount      string
		wantSuccess bool
		wantOutcome domain.OutcomeType
	}{
		// доступно: 110 - 30 - 50 = 30
		{name: "exact withdrawable", amount: "30", wantSuccess: true, wantOutcome: domain.OutcomeOK},
		{name: "over withdrawable", amount: "30.1", wantOutcome: domain.OutcomeInsufficientBalance},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			amount := domain.MustMoney(dec(t.amount))
			s.deps.expectDo()
			s.deps.userRepo.EXPECT().LockUserByID(gomock.Any(), uid).Return(&domain.User{ID: uid}, nil)
			s.deps.depositRepo.EXPECT().GetPlansByUserID(gomock.Any(), uid).Return(rows, nil)
			s.deps.withdrawalRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(withdrawals, nil)
			if t.wantSuccess {
				s.deps.withdrawalRepo.EXPECT().Create(gomock.Any(), repoargs.CreateWithdrawal{
					UserID:        uid,
					Amount:        amount.Decimal(),
					TransactionID: txID.String(),
				}).Return(&domain.Withdrawal{ID: 9, UserID: uid, Amount: amount.Decimal()}, nil)
			} else {
				s.deps.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			}

			res, reqErr := s.service.RequestWithdrawal(s.T().Context(), s.userID, amount, txID)
			s.Require().NoError(reqErr)
			s.Equal(t.wantSuccess, res.Success)
			s.Equal(t.wantOutcome, res.Outcome)
			s.Equal("30", res.Withdrawable.String())
		})
	}
}

func (s *WalletServiceTestSuite) TestRequestWithdrawal_UnknownUser() {
	s.deps.expectDo()
	s.deps.userRepo.EXPECT().LockUserByID(gomock.Any(), s.userID.Int64()).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.RequestWithdrawal(
		s.T().Context(), s.userID, domain.MustMoney(dec("1")), domain.TransactionID("WD-1"),
	)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *WalletServiceTestSuite) TestTotalWithdrawals() {
	s.deps.expectView()
	s.deps.withdrawalRepo.EXPECT().GetByUserID(gomock.Any(), s.userID.Int64()).Return([]domain.Withdrawal{
		{Amount: dec("10.25"), IsVerified: true},
		{Amount: dec("5"), IsVerified: true},
		{Amount: dec("100")},
	}, nil)

	total, err := s.service.TotalWithdrawals(s.T().Context(), s.userID)
	s.Require().NoError(err)
	s.Equal("15.3", total.String())
}

func (s *WalletServiceTestSuite) TestUserHistory() {
	uid := s.userID.Int64()
	s.deps.expectView().Times(2)
	s.deps.cashRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return([]domain.CashTransaction{confirmedCash(uid, "1")}, nil)
	s.deps.withdrawalRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(nil, errors.New("boom"))

	history, err := s.service.UserTransactions(s.T().Context(), s.userID)
	s.Require().NoError(err)
	s.Len(history, 1)

	_, err = s.service.UserWithdrawals(s.T().Context(), s.userID)
	s.Require().Error(err)
}
