package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/engine"
	"github.com/fsdevblog/groph-wallet/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// currentUser проверенный ID текущего юзера. При ошибке запрос уже прерван.
func currentUser(c *gin.Context) (domain.UserID, bool) {
	userID, err := domain.NewUserID(getUserIDFromContext(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "User ID not found in token"})
		return 0, false
	}
	return userID, true
}

// money округляет сумму до десятых на выходе из API.
func money(d decimal.Decimal) float64 {
	return engine.RoundTenths(d).InexactFloat64()
}

func moneyPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := money(*d)
	return &v
}

// bindJSON разбирает тело запроса. Ошибки валидации отдаются клиенту списком полей.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		fields := make([]string, len(valErrs))
		for i, fe := range valErrs {
			fields[i] = fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request: " + strings.Join(fields, ", "),
		})
		return false
	}
	abortWithError(c, http.StatusBadRequest, bindErr, gin.ErrorTypeBind)
	return false
}

// abortWithError прерывает запрос со статусом code. Тело ответа пишет middlewares.Errors, поэтому заголовки
// здесь не отправляются.
func abortWithError(c *gin.Context, code int, err error, typ gin.ErrorType) {
	c.Status(code)
	_ = c.Error(err).SetType(typ)
	c.Abort()
}

// rejectInput 400 с текстом ошибки проверки входных данных.
func rejectInput(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, err, gin.ErrorTypePublic)
}

// abortWithServiceError переводит ошибку сервиса в http статус. Текст отдается клиенту только для ошибок,
// которые описывают вход запроса.
func abortWithServiceError(c *gin.Context, err error) {
	var (
		unknownPlan *domain.UnknownPlanError
		outOfRange  *domain.AmountOutOfRangeError
	)
	switch {
	case errors.Is(err, domain.ErrOutcomeUnknown):
		abortWithError(c, http.StatusGatewayTimeout, err, gin.ErrorTypePrivate)
	case errors.Is(err, context.Canceled):
		// клиент ушел, отвечать некому.
		abortWithError(c, http.StatusRequestTimeout, err, gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrForbidden):
		abortWithError(c, http.StatusForbidden, err, gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err, gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrDuplicateTransactionID):
		abortWithError(c, http.StatusConflict, errors.New("transaction ID already exists"), gin.ErrorTypePublic)
	case errors.As(err, &unknownPlan):
		rejectInput(c, unknownPlan)
	case errors.As(err, &outOfRange):
		rejectInput(c, outOfRange)
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTransactionID),
		errors.Is(err, domain.ErrInvalidUser):
		rejectInput(c, err)
	default:
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
	}
}

// outcomeStatus http статус бизнес-результата. ok - статус успешного ответа.
func outcomeStatus(outcome domain.OutcomeType, ok int) int {
	switch outcome {
	case domain.OutcomeOK:
		return ok
	case domain.OutcomeInsufficientBalance:
		return http.StatusPaymentRequired
	case domain.OutcomeDuplicatePlan:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// handlerOpts общие настройки хэндлеров: дедлайн вызова сервиса и часы.
type handlerOpts struct {
	timeout time.Duration
	now     func() time.Time
}

// serviceContext контекст вызова сервиса с дедлайном.
func (o handlerOpts) serviceContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c, o.timeout)
}
