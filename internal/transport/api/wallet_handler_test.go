package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WalletHandlerTestSuite struct {
	routerSuite
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) TestDeposit() {
	uid := domain.UserID(s.userID)
	s.walletService.EXPECT().
		CreateDeposit(gomock.Any(), uid, moneyEq("200"), domain.TransactionID("TX-1")).
		Return(&domain.DepositResult{
			Transaction: &domain.CashTransaction{ID: 1, UserID: s.userID, Amount: dec("200"), TransactionID: "TX-1"},
			Message:     "Deposit of $200 successful. Awaiting admin confirmation.",
		}, nil)
	s.walletService.EXPECT().
		CreateDeposit(gomock.Any(), uid, moneyEq("50"), domain.TransactionID("TX-1")).
		Return(nil, fmt.Errorf("creating deposit: %w", domain.ErrDuplicateTransactionID))
	s.walletService.EXPECT().
		CreateDeposit(gomock.Any(), uid, moneyEq("75"), domain.TransactionID("TX-SLOW")).
		Return(nil, fmt.Errorf("creating deposit: %w", fmt.Errorf("%w: %w", context.DeadlineExceeded, domain.ErrOutcomeUnknown)))

	cases := []struct {
		name       string
		payload    any
		token      string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    map[string]any{"amount": 200, "transactionId": " TX-1 "},
			token:      s.userToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "duplicate transaction id",
			payload:    map[string]any{"amount": "50", "transactionId": "TX-1"},
			token:      s.userToken,
			wantStatus: http.StatusConflict,
		}, {
			name:       "timeout",
			payload:    map[string]any{"amount": 75, "transactionId": "TX-SLOW"},
			token:      s.userToken,
			wantStatus: http.StatusGatewayTimeout,
		}, {
			name:       "zero amount",
			payload:    map[string]any{"amount": 0, "transactionId": "TX-2"},
			token:      s.userToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "amount over limit",
			payload:    map[string]any{"amount": 1_000_001, "transactionId": "TX-2"},
			token:      s.userToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "blank transaction id",
			payload:    map[string]any{"amount": 10, "transactionId": "   "},
			token:      s.userToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "missing transaction id",
			payload:    map[string]any{"amount": 10},
			token:      s.userToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "broken json",
			payload:    "{",
			token:      s.userToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not authorized",
			payload:    map[string]any{"amount": 200, "transactionId": "TX-1"},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.do(http.MethodPost, DepositRoute, t.token, t.payload)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WalletHandlerTestSuite) TestBalanceRoundsAtBoundary() {
	s.walletService.EXPECT().GetWalletBalance(gomock.Any(), domain.UserID(s.userID)).Return(&domain.WalletBalance{
		UserID:           s.userID,
		TotalDeposited:   dec("304.95"),
		ConfirmedBalance: dec("204.95"),
		PendingBalance:   dec("100"),
		AvailableBalance: dec("104.94"),
	}, nil)

	status, body := s.doJSON(http.MethodGet, BalanceRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	s.InDelta(305.0, body["totalDeposited"], 1e-9)
	s.InDelta(205.0, body["confirmedBalance"], 1e-9)
	s.InDelta(100.0, body["pendingBalance"], 1e-9)
	s.InDelta(104.9, body["availableBalance"], 1e-9)
}

func (s *WalletHandlerTestSuite) TestValuationRoutesUseClock() {
	uid := domain.UserID(s.userID)
	s.walletService.EXPECT().ActiveInvestmentValue(gomock.Any(), uid, testNow).Return(dec("105"), nil)
	s.walletService.EXPECT().MaturedValue(gomock.Any(), uid, testNow).Return(dec("100"), nil)
	s.walletService.EXPECT().FinalBalance(gomock.Any(), uid).Return(dec("80"), nil)
	s.walletService.EXPECT().TotalWithdrawals(gomock.Any(), uid).Return(dec("30"), nil)

	status, body := s.doJSON(http.MethodGet, ActiveInvestmentRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	s.InDelta(105.0, body["activeInvestmentValue"], 1e-9)

	status, body = s.doJSON(http.MethodGet, ROIRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	s.InDelta(100.0, body["maturedValue"], 1e-9)

	status, body = s.doJSON(http.MethodGet, FinalBalanceRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	s.InDelta(80.0, body["finalBalance"], 1e-9)
	s.InDelta(30.0, body["totalWithdrawals"], 1e-9)
}

func (s *WalletHandlerTestSuite) TestHistory() {
	s.walletService.EXPECT().UserTransactions(gomock.Any(), domain.UserID(s.userID)).Return([]domain.CashTransaction{
		{ID: 2, Amount: dec("50"), TransactionID: "TX-2"},
		{ID: 1, Amount: dec("200"), TransactionID: "TX-1", Status: true},
	}, nil)

	status, body := s.doJSON(http.MethodGet, HistoryRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	transactions, ok := body["transactions"].([]any)
	s.Require().True(ok)
	s.Len(transactions, 2)
}

func (s *WalletHandlerTestSuite) TestWithdraw() {
	uid := domain.UserID(s.userID)
	s.walletService.EXPECT().
		RequestWithdrawal(gomock.Any(), uid, moneyEq("30"), domain.TransactionID("WD-1")).
		Return(&domain.WithdrawalResult{
			Success:      true,
			Outcome:      domain.OutcomeOK,
			Message:      "Withdrawal of $30 requested. Awaiting admin confirmation.",
			Withdrawal:   &domain.Withdrawal{ID: 1, Amount: dec("30"), TransactionID: "WD-1"},
			Withdrawable: dec("110"),
		}, nil)
	s.walletService.EXPECT().
		RequestWithdrawal(gomock.Any(), uid, moneyEq("500"), domain.TransactionID("WD-2")).
		Return(&domain.WithdrawalResult{
			Outcome:      domain.OutcomeInsufficientBalance,
			Message:      "Insufficient balance. Available: $80, Required: $500",
			Withdrawable: dec("80"),
		}, nil)

	status, body := s.doJSON(http.MethodPost, WithdrawRoute, s.userToken,
		map[string]any{"amount": 30, "transactionId": "WD-1"})
	s.Equal(http.StatusCreated, status)
	s.Equal(true, body["success"])
	s.NotNil(body["withdrawal"])

	status, body = s.doJSON(http.MethodPost, WithdrawRoute, s.userToken,
		map[string]any{"amount": 500, "transactionId": "WD-2"})
	s.Equal(http.StatusPaymentRequired, status)
	s.Equal(false, body["success"])
	s.InDelta(80.0, body["withdrawable"], 1e-9)
	s.NotContains(body, "withdrawal")
}

func (s *WalletHandlerTestSuite) TestWithdrawals() {
	s.walletService.EXPECT().UserWithdrawals(gomock.Any(), domain.UserID(s.userID)).Return([]domain.Withdrawal{
		{ID: 1, Amount: dec("30"), TransactionID: "WD-1", IsRejected: true},
	}, nil)

	status, body := s.doJSON(http.MethodGet, WithdrawalsRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	withdrawals, ok := body["withdrawals"].([]any)
	s.Require().True(ok)
	s.Require().Len(withdrawals, 1)
	first, ok := withdrawals[0].(map[string]any)
	s.Require().True(ok)
	s.Equal(true, first["isRejected"])
}

func (s *WalletHandlerTestSuite) TestServiceErrors() {
	uid := domain.UserID(s.userID)
	s.walletService.EXPECT().GetWalletBalance(gomock.Any(), uid).
		Return(nil, fmt.Errorf("getting wallet balance: %w", domain.ErrNotFound))

	status, body := s.doJSON(http.MethodGet, BalanceRoute, s.userToken, nil)
	s.Equal(http.StatusNotFound, status)
	s.Equal(false, body["success"])
	s.Equal("not found", body["message"])
}
