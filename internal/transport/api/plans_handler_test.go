package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PlansHandlerTestSuite struct {
	routerSuite
}

func TestPlansHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlansHandlerTestSuite))
}

func (s *PlansHandlerTestSuite) TestAvailableWithoutAuth() {
	s.planService.EXPECT().ListAvailablePlans().Return(catalog.Default().List())

	status, body := s.doJSON(http.MethodGet, AvailablePlansRoute, "", nil)
	s.Equal(http.StatusOK, status)
	plans, ok := body["plans"].([]any)
	s.Require().True(ok)
	s.Require().NotEmpty(plans)
	basic, ok := plans[0].(map[string]any)
	s.Require().True(ok)
	s.Equal("BASIC", basic["name"])
	s.InDelta(30.0, basic["durationDays"], 1e-9)
	s.InDelta(100.0, basic["minAmount"], 1e-9)
}

func (s *PlansHandlerTestSuite) TestPurchase() {
	uid := domain.UserID(s.userID)
	basicName := "BASIC"

	s.planService.EXPECT().
		PurchasePlan(gomock.Any(), uid, "basic", nil).
		Return(&domain.PurchaseResult{
			Success: true,
			Outcome: domain.OutcomeOK,
			Message: "Successfully purchased BASIC plan",
			Plan: &domain.PurchasedPlan{
				ID:             1,
				PlanName:       basicName,
				Amount:         dec("100"),
				TransactionID:  "PLAN-BASIC-01J",
				Duration:       30 * 24 * time.Hour,
				ReturnRate:     dec("0.10"),
				ExpectedReturn: dec("110"),
				CreatedAt:      testNow,
			},
			RemainingBalance: dec("100"),
		}, nil)
	s.planService.EXPECT().
		PurchasePlan(gomock.Any(), uid, "GOLD", moneyEq("5000")).
		Return(&domain.PurchaseResult{
			Outcome:   domain.OutcomeInsufficientBalance,
			Message:   "Insufficient balance",
			Required:  dec("5000"),
			Shortfall: dec("4900"),
		}, nil)
	s.planService.EXPECT().
		PurchasePlan(gomock.Any(), uid, "SILVER", nil).
		Return(&domain.PurchaseResult{
			Outcome: domain.OutcomeDuplicatePlan,
			Message: "You already have an active SILVER plan",
		}, nil)
	s.planService.EXPECT().
		PurchasePlan(gomock.Any(), uid, "DIAMOND", nil).
		Return(nil, fmt.Errorf("purchasing plan: %w", &domain.UnknownPlanError{Name: "DIAMOND"}))
	s.planService.EXPECT().
		PurchasePlan(gomock.Any(), uid, "BASIC", moneyEq("5000")).
		Return(nil, fmt.Errorf("purchasing plan: %w", &domain.AmountOutOfRangeError{
			Plan: "BASIC", Amount: dec("5000"), Min: dec("100"),
		}))

	cases := []struct {
		name       string
		payload    any
		wantStatus int
		check      func(body map[string]any)
	}{
		{
			name:       "all ok",
			payload:    map[string]any{"planName": "basic"},
			wantStatus: http.StatusCreated,
			check: func(body map[string]any) {
				plan, ok := body["plan"].(map[string]any)
				s.Require().True(ok)
				s.InDelta(110.0, plan["expectedReturn"], 1e-9)
				s.InDelta(30.0, plan["durationDays"], 1e-9)
			},
		}, {
			name:       "insufficient balance",
			payload:    map[string]any{"planName": "GOLD", "customAmount": 5000},
			wantStatus: http.StatusPaymentRequired,
			check: func(body map[string]any) {
				s.InDelta(4900.0, body["shortfall"], 1e-9)
				s.NotContains(body, "plan")
			},
		}, {
			name:       "duplicate plan",
			payload:    map[string]any{"planName": "SILVER"},
			wantStatus: http.StatusConflict,
		}, {
			name:       "unknown plan",
			payload:    map[string]any{"planName": "DIAMOND"},
			wantStatus: http.StatusBadRequest,
			check: func(body map[string]any) {
				s.Contains(body["message"], "DIAMOND")
			},
		}, {
			name:       "amount out of range",
			payload:    map[string]any{"planName": "BASIC", "customAmount": 5000},
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "negative custom amount",
			payload:    map[string]any{"planName": "BASIC", "customAmount": -1},
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "missing plan name",
			payload:    map[string]any{},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.doJSON(http.MethodPost, PurchasePlanRoute, s.userToken, t.payload)
			s.Equal(t.wantStatus, status)
			if t.check != nil {
				t.check(body)
			}
		})
	}
}

func (s *PlansHandlerTestSuite) TestMyPlans() {
	basic := "BASIC"
	s.planService.EXPECT().UserPlans(gomock.Any(), domain.UserID(s.userID), testNow).Return([]domain.UserPlan{
		{
			Deposit: domain.Deposit{
				ID:            1,
				Amount:        dec("100"),
				TransactionID: "PLAN-BASIC-01J",
				IsVerified:    true,
				Plan:          &basic,
				CreatedAt:     testNow.Add(-31 * 24 * time.Hour),
			},
			Duration:       30 * 24 * time.Hour,
			ReturnRate:     dec("0.10"),
			ExpectedReturn: dec("110"),
			IsMatured:      true,
			KnownPlan:      true,
		},
	}, nil)

	status, body := s.doJSON(http.MethodGet, MyPlansRoute, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	plans, ok := body["plans"].([]any)
	s.Require().True(ok)
	s.Require().Len(plans, 1)
	first, ok := plans[0].(map[string]any)
	s.Require().True(ok)
	s.Equal("BASIC", first["planName"])
	s.Equal(true, first["isMatured"])
}
