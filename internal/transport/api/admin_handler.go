package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type AdminHandler struct {
	handlerOpts
	svs AdminServicer
}

func NewAdminHandler(svs AdminServicer, opts handlerOpts) *AdminHandler {
	return &AdminHandler{
		handlerOpts: opts,
		svs:         svs,
	}
}

type PageParams struct {
	Page  uint `binding:"omitempty,min=1"     form:"page"`
	Limit uint `binding:"omitempty,min=1,max=100" form:"limit"`
}

type PaginationResponse struct {
	CurrentPage uint  `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

type PendingDepositResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PendingDeposits GET RouteGroup + PendingDepositsRoute?page=&limit=. Старые депозиты первыми.
func (h *AdminHandler) PendingDeposits(c *gin.Context) {
	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	params, ok := bindPage(c)
	if !ok {
		return
	}

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	page, err := h.svs.PendingDeposits(ctx, adminID, params.repoPage())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	deposits := make([]PendingDepositResponse, len(page.Transactions))
	for i, t := range page.Transactions {
		deposits[i] = PendingDepositResponse{
			ID:            t.ID,
			UserID:        t.UserID,
			Amount:        money(t.Amount),
			TransactionID: t.TransactionID,
			CreatedAt:     t.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"transactions": deposits,
		"totalCount":   page.TotalCount,
		"hasMore":      page.HasMore,
		"pagination":   params.pagination(page.TotalCount, page.HasMore),
	})
}

type VerifiedDepositResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	UserName      string    `json:"userName"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	Plan          string    `json:"plan"`
	IsUpdated     bool      `json:"isUpdated"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListDeposits GET RouteGroup + DepositsRoute?page=&limit=. Подтвержденные покупки планов всех пользователей.
func (h *AdminHandler) ListDeposits(c *gin.Context) {
	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	params, ok := bindPage(c)
	if !ok {
		return
	}

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	page, err := h.svs.ListDeposits(ctx, adminID, params.repoPage())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	deposits := make([]VerifiedDepositResponse, len(page.Deposits))
	for i, d := range page.Deposits {
		deposits[i] = VerifiedDepositResponse{
			ID:            d.ID,
			UserID:        d.UserID,
			UserName:      d.Username,
			Amount:        money(d.Amount),
			TransactionID: d.TransactionID,
			Plan:          d.PlanName(),
			IsUpdated:     d.IsUpdated,
			CreatedAt:     d.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"deposits":   deposits,
		"totalCount": page.TotalCount,
		"pagination": params.pagination(page.TotalCount, page.HasMore),
	})
}

// bindPage читает page/limit из query и подставляет значения по умолчанию.
func bindPage(c *gin.Context) (PageParams, bool) {
	var params PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		rejectInput(c, err)
		return params, false
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = defaultPageLimit
	}
	params.Limit = min(params.Limit, maxPageLimit)
	return params, true
}

func (p PageParams) repoPage() repoargs.Page {
	return repoargs.Page{
		Limit:  p.Limit,
		Offset: (p.Page - 1) * p.Limit,
	}
}

func (p PageParams) pagination(total int64, hasMore bool) PaginationResponse {
	limit := int64(p.Limit)
	return PaginationResponse{
		CurrentPage: p.Page,
		TotalPages:  (total + limit - 1) / limit,
		HasNext:     hasMore,
		HasPrevious: p.Page > 1,
	}
}

// VerifyParams ShouldConfirm по умолчанию true.
type VerifyParams struct {
	TransactionID string `binding:"required,max=100" json:"transactionId"`
	ShouldConfirm *bool  `json:"shouldConfirm"`
}

type verifyFunc func(
	ctx context.Context,
	transactionID domain.TransactionID,
	adminID domain.UserID,
	shouldConfirm bool,
) (*domain.VerificationResult, error)

// VerifyDeposit POST RouteGroup + VerifyDepositRoute.
func (h *AdminHandler) VerifyDeposit(c *gin.Context) {
	h.verify(c, h.svs.VerifyDeposit)
}

// VerifyWithdrawal POST RouteGroup + VerifyWithdrawalRoute.
func (h *AdminHandler) VerifyWithdrawal(c *gin.Context) {
	h.verify(c, h.svs.VerifyWithdrawal)
}

func (h *AdminHandler) verify(c *gin.Context, fn verifyFunc) {
	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	var params VerifyParams
	if !bindJSON(c, &params) {
		return
	}
	txID, err := domain.NewTransactionID(params.TransactionID)
	if err != nil {
		rejectInput(c, err)
		return
	}
	shouldConfirm := params.ShouldConfirm == nil || *params.ShouldConfirm

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	res, err := fn(ctx, txID, adminID, shouldConfirm)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(outcomeStatus(res.Outcome, http.StatusOK), gin.H{
		"success":        res.Success,
		"message":        res.Message,
		"transactionId":  res.TransactionID,
		"newStatus":      res.NewStatus,
		"affectedUserId": res.AffectedUserID,
	})
}

type AmendParams struct {
	UserName      string          `binding:"required,max=50"  json:"userName"`
	TransactionID string          `binding:"required,max=100" json:"transactionId"`
	NewAmount     decimal.Decimal `json:"newAmount"`
	PlanName      string          `binding:"required,max=50"  json:"planName"`
}

type AmendedPlanResponse struct {
	ID                int64     `json:"id"`
	PlanName          string    `json:"planName"`
	PreviousAmount    float64   `json:"previousAmount"`
	NewAmount         float64   `json:"newAmount"`
	AmountDifference  float64   `json:"amountDifference"`
	TransactionID     string    `json:"transactionId"`
	DurationDays      int64     `json:"durationDays"`
	ReturnRate        float64   `json:"returnRate"`
	NewExpectedReturn float64   `json:"newExpectedReturn"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// AmendPlanAmount PUT RouteGroup + AmendPlanRoute. Изменение суммы купленного плана.
func (h *AdminHandler) AmendPlanAmount(c *gin.Context) {
	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	var params AmendParams
	if !bindJSON(c, &params) {
		return
	}
	newAmount, err := domain.NewMoney(params.NewAmount)
	if err != nil {
		rejectInput(c, err)
		return
	}
	txID, err := domain.NewTransactionID(params.TransactionID)
	if err != nil {
		rejectInput(c, err)
		return
	}

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	res, err := h.svs.AmendPlanAmount(ctx, domain.AmendPlanArgs{
		UserName:      params.UserName,
		TransactionID: txID,
		NewAmount:     newAmount,
		PlanName:      params.PlanName,
		AdminID:       adminID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	body := gin.H{
		"success":     res.Success,
		"message":     res.Message,
		"userBalance": money(res.UserBalance),
		"userName":    res.UserName,
	}
	switch {
	case res.UpdatedPlan != nil:
		p := res.UpdatedPlan
		body["updatedPlan"] = AmendedPlanResponse{
			ID:                p.ID,
			PlanName:          p.PlanName,
			PreviousAmount:    money(p.PreviousAmount),
			NewAmount:         money(p.NewAmount),
			AmountDifference:  money(p.AmountDifference),
			TransactionID:     p.TransactionID,
			DurationDays:      durationDays(p.Duration),
			ReturnRate:        p.ReturnRate.InexactFloat64(),
			NewExpectedReturn: money(p.NewExpectedReturn),
			UpdatedAt:         p.UpdatedAt,
		}
	case res.Outcome == domain.OutcomeInsufficientBalance:
		body["currentAmount"] = money(res.CurrentAmount)
		body["requestedAmount"] = money(res.RequestedAmount)
	}
	c.JSON(outcomeStatus(res.Outcome, http.StatusOK), body)
}
