package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	handlerOpts
	svs WalletServicer
}

func NewWalletHandler(svs WalletServicer, opts handlerOpts) *WalletHandler {
	return &WalletHandler{
		handlerOpts: opts,
		svs:         svs,
	}
}

// AmountParams тело запросов на депозит и вывод. Сумма проверяется domain.NewMoney.
type AmountParams struct {
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `binding:"required,max=100" json:"transactionId"`
}

// parseAmountParams проверяет сумму и идентификатор транзакции.
func parseAmountParams(c *gin.Context) (domain.Money, domain.TransactionID, bool) {
	var params AmountParams
	if !bindJSON(c, &params) {
		return domain.Money{}, "", false
	}
	amount, err := domain.NewMoney(params.Amount)
	if err != nil {
		rejectInput(c, err)
		return domain.Money{}, "", false
	}
	txID, err := domain.NewTransactionID(params.TransactionID)
	if err != nil {
		rejectInput(c, err)
		return domain.Money{}, "", false
	}
	return amount, txID, true
}

type CashTransactionResponse struct {
	ID            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	Status        bool      `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newCashTransactionResponse(t domain.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		ID:            t.ID,
		Amount:        money(t.Amount),
		TransactionID: t.TransactionID,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
}

// Deposit POST RouteGroup + DepositRoute. Создает депозит, ожидающий подтверждения.
func (h *WalletHandler) Deposit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	amount, txID, ok := parseAmountParams(c)
	if !ok {
		return
	}

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	res, err := h.svs.CreateDeposit(ctx, userID, amount, txID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     res.Message,
		"transaction": newCashTransactionResponse(*res.Transaction),
	})
}

type BalanceResponse struct {
	UserID           int64   `json:"userId"`
	TotalDeposited   float64 `json:"totalDeposited"`
	ConfirmedBalance float64 `json:"confirmedBalance"`
	PendingBalance   float64 `json:"pendingBalance"`
	AvailableBalance float64 `json:"availableBalance"`
}

// Balance GET RouteGroup + BalanceRoute.
func (h *WalletHandler) Balance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx, cancel := h.serviceContext(c)
	defer cancel()

	balance, err := h.svs.GetWalletBalance(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{
		UserID:           balance.UserID,
		TotalDeposited:   money(balance.TotalDeposited),
		ConfirmedBalance: money(balance.ConfirmedBalance),
		PendingBalance:   money(balance.PendingBalance),
		AvailableBalance: money(balance.AvailableBalance),
	})
}

// History GET RouteGroup + HistoryRoute. Денежные транзакции, новые первыми.
func (h *WalletHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx, cancel := h.serviceContext(c)
	defer cancel()

	transactions, err := h.svs.UserTransactions(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]CashTransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = newCashTransactionResponse(t)
	}
	c.JSON(http.StatusOK, gin.H{"transactions": response})
}

// ActiveInvestment GET RouteGroup + ActiveInvestmentRoute. Текущая стоимость активных планов.
func (h *WalletHandler) ActiveInvestment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx, cancel := h.serviceContext(c)
	defer cancel()

	now := h.now()
	value, err := h.svs.ActiveInvestmentValue(ctx, userID, now)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeInvestmentValue": money(value), "calculatedAt": now})
}

// ROI GET RouteGroup + ROIRoute. Сумма к расчету с учетом погашенных планов.
func (h *WalletHandler) ROI(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx, cancel := h.serviceContext(c)
	defer cancel()

	now := h.now()
	value, err := h.svs.MaturedValue(ctx, userID, now)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"maturedValue": money(value), "calculatedAt": now})
}

// FinalBalance GET RouteGroup + FinalBalanceRoute.
func (h *WalletHandler) FinalBalance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx, cancel := h.serviceContext(c)
	defer cancel()

	final, err := h.svs.FinalBalance(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	withdrawn, err := h.svs.TotalWithdrawals(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"finalBalance": money(final), "totalWithdrawals": money(withdrawn)})
}

type WithdrawalResponse struct {
	ID            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	IsVerified    bool      `json:"isVerified"`
	IsRejected    bool      `json:"isRejected"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newWithdrawalResponse(w domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:            w.ID,
		Amount:        money(w.Amount),
		TransactionID: w.TransactionID,
		IsVerified:    w.IsVerified,
		IsRejected:    w.IsRejected,
		CreatedAt:     w.CreatedAt,
	}
}

// Withdraw POST RouteGroup + WithdrawRoute. Заявка на вывод.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	amount, txID, ok := parseAmountParams(c)
	if !ok {
		return
	}

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	res, err := h.svs.RequestWithdrawal(ctx, userID, amount, txID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	body := gin.H{
		"success":      res.Success,
		"message":      res.Message,
		"withdrawable": money(res.Withdrawable),
	}
	if res.Withdrawal != nil {
		body["withdrawal"] = newWithdrawalResponse(*res.Withdrawal)
	}
	c.JSON(outcomeStatus(res.Outcome, http.StatusCreated), body)
}

// Withdrawals GET RouteGroup + WithdrawalsRoute.
func (h *WalletHandler) Withdrawals(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx, cancel := h.serviceContext(c)
	defer cancel()

	withdrawals, err := h.svs.UserWithdrawals(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		response[i] = newWithdrawalResponse(w)
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": response})
}
