package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PlansHandler struct {
	handlerOpts
	svs PlanServicer
}

func NewPlansHandler(svs PlanServicer, opts handlerOpts) *PlansHandler {
	return &PlansHandler{
		handlerOpts: opts,
		svs:         svs,
	}
}

type PlanSummaryResponse struct {
	Name         string   `json:"name"`
	ReturnRate   float64  `json:"returnRate"`
	DurationDays int64    `json:"durationDays"`
	MinAmount    float64  `json:"minAmount"`
	MaxAmount    *float64 `json:"maxAmount"`
}

// Available GET RouteGroup + AvailablePlansRoute.
func (h *PlansHandler) Available(c *gin.Context) {
	plans := h.svs.ListAvailablePlans()
	response := make([]PlanSummaryResponse, len(plans))
	for i, p := range plans {
		response[i] = PlanSummaryResponse{
			Name:         p.Name,
			ReturnRate:   p.ReturnRate.InexactFloat64(),
			DurationDays: p.DurationDays,
			MinAmount:    money(p.MinAmount),
			MaxAmount:    moneyPtr(p.MaxAmount),
		}
	}
	c.JSON(http.StatusOK, gin.H{"plans": response})
}

type PurchaseParams struct {
	PlanName     string           `binding:"required,max=50" json:"planName"`
	CustomAmount *decimal.Decimal `json:"customAmount"`
}

type PurchasedPlanResponse struct {
	ID             int64     `json:"id"`
	PlanName       string    `json:"planName"`
	Amount         float64   `json:"amount"`
	TransactionID  string    `json:"transactionId"`
	DurationDays   int64     `json:"durationDays"`
	ReturnRate     float64   `json:"returnRate"`
	ExpectedReturn float64   `json:"expectedReturn"`
	CreatedAt      time.Time `json:"createdAt"`
}

func durationDays(d time.Duration) int64 {
	days := d / (24 * time.Hour)
	if d%(24*time.Hour) != 0 {
		days++
	}
	return int64(days)
}

// Purchase POST RouteGroup + PurchasePlanRoute. Покупка плана за счет доступного баланса.
func (h *PlansHandler) Purchase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params PurchaseParams
	if !bindJSON(c, &params) {
		return
	}
	var custom *domain.Money
	if params.CustomAmount != nil {
		m, err := domain.NewMoney(*params.CustomAmount)
		if err != nil {
			rejectInput(c, err)
			return
		}
		custom = &m
	}

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	res, err := h.svs.PurchasePlan(ctx, userID, params.PlanName, custom)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	body := gin.H{
		"success":          res.Success,
		"message":          res.Message,
		"remainingBalance": money(res.RemainingBalance),
	}
	switch {
	case res.Plan != nil:
		body["plan"] = PurchasedPlanResponse{
			ID:             res.Plan.ID,
			PlanName:       res.Plan.PlanName,
			Amount:         money(res.Plan.Amount),
			TransactionID:  res.Plan.TransactionID,
			DurationDays:   durationDays(res.Plan.Duration),
			ReturnRate:     res.Plan.ReturnRate.InexactFloat64(),
			ExpectedReturn: money(res.Plan.ExpectedReturn),
			CreatedAt:      res.Plan.CreatedAt,
		}
	case res.Outcome == domain.OutcomeInsufficientBalance:
		body["required"] = money(res.Required)
		body["shortfall"] = money(res.Shortfall)
	}
	c.JSON(outcomeStatus(res.Outcome, http.StatusCreated), body)
}

type UserPlanResponse struct {
	ID             int64     `json:"id"`
	PlanName       string    `json:"planName"`
	Amount         float64   `json:"amount"`
	TransactionID  string    `json:"transactionId"`
	IsUpdated      bool      `json:"isUpdated"`
	KnownPlan      bool      `json:"knownPlan"`
	DurationDays   int64     `json:"durationDays"`
	ReturnRate     float64   `json:"returnRate"`
	ExpectedReturn float64   `json:"expectedReturn"`
	IsMatured      bool      `json:"isMatured"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MyPlans GET RouteGroup + MyPlansRoute. Купленные планы с ожидаемым доходом и признаком погашения.
func (h *PlansHandler) MyPlans(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx, cancel := h.serviceContext(c)
	defer cancel()

	plans, err := h.svs.UserPlans(ctx, userID, h.now())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]UserPlanResponse, len(plans))
	for i, p := range plans {
		response[i] = UserPlanResponse{
			ID:             p.ID,
			PlanName:       p.PlanName(),
			Amount:         money(p.Amount),
			TransactionID:  p.TransactionID,
			IsUpdated:      p.IsUpdated,
			KnownPlan:      p.KnownPlan,
			DurationDays:   durationDays(p.Duration),
			ReturnRate:     p.ReturnRate.InexactFloat64(),
			ExpectedReturn: money(p.ExpectedReturn),
			IsMatured:      p.IsMatured,
			CreatedAt:      p.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"plans": response})
}
