package api

import (
	"time"

	"github.com/fsdevblog/groph-wallet/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup            = "/api"
	RegisterRoute         = "/user/register"
	LoginRoute            = "/user/login"
	HealthRoute           = "/health"
	AvailablePlansRoute   = "/plans/available"
	PurchasePlanRoute     = "/plans/purchase"
	MyPlansRoute          = "/plans/my-plans"
	DepositRoute          = "/wallet/deposit"
	BalanceRoute          = "/wallet/balance"
	HistoryRoute          = "/wallet/history"
	ActiveInvestmentRoute = "/wallet/active-investment"
	ROIRoute              = "/wallet/roi"
	FinalBalanceRoute     = "/wallet/final-balance"
	WithdrawRoute         = "/wallet/withdraw"
	WithdrawalsRoute      = "/wallet/withdrawals"
	DepositsRoute         = "/admin/deposits"
	PendingDepositsRoute  = "/admin/deposits/pending"
	VerifyDepositRoute    = "/admin/deposits/verify"
	VerifyWithdrawalRoute = "/admin/withdrawals/verify"
	AmendPlanRoute        = "/admin/plans/update-amount"
)

// RateLimits лимиты запросов на группу роутов. Если в RouterArgs не заданы, используются DefaultRateLimits.
type RateLimits struct {
	Deposit  *middlewares.RateLimiter
	Withdraw *middlewares.RateLimiter
	Purchase *middlewares.RateLimiter
	Admin    *middlewares.RateLimiter
}

func DefaultRateLimits() RateLimits {
	return RateLimits{
		Deposit:  middlewares.NewRateLimiter(5, 15*time.Minute),
		Withdraw: middlewares.NewRateLimiter(5, 15*time.Minute),
		Purchase: middlewares.NewRateLimiter(3, 10*time.Minute),
		Admin:    middlewares.NewRateLimiter(50, 5*time.Minute),
	}
}

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	WalletService  WalletServicer
	PlanService    PlanServicer
	AdminService   AdminServicer
	HealthChecker  HealthChecker
	JWTSecretKey   []byte
	ServiceTimeout time.Duration
	RateLimits     *RateLimits
	Now            func() time.Time
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	// отмена запроса клиентом доходит до сервисов через c.Done().
	r.ContextWithFallback = true
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	opts := handlerOpts{timeout: args.ServiceTimeout, now: args.Now}
	if opts.timeout <= 0 {
		opts.timeout = DefaultServiceTimeout
	}
	if opts.now == nil {
		opts.now = time.Now
	}
	limits := DefaultRateLimits()
	if args.RateLimits != nil {
		limits = *args.RateLimits
	}

	authHandler := NewAuthHandler(args.UserService, opts)
	walletHandler := NewWalletHandler(args.WalletService, opts)
	plansHandler := NewPlansHandler(args.PlanService, opts)
	adminHandler := NewAdminHandler(args.AdminService, opts)
	healthHandler := NewHealthHandler(args.HealthChecker, opts)

	api := r.Group(RouteGroup)

	api.GET(HealthRoute, healthHandler.Health)
	api.GET(AvailablePlansRoute, plansHandler.Available)
	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(BalanceRoute, walletHandler.Balance)
	api.GET(HistoryRoute, walletHandler.History)
	api.GET(ActiveInvestmentRoute, walletHandler.ActiveInvestment)
	api.GET(ROIRoute, walletHandler.ROI)
	api.GET(FinalBalanceRoute, walletHandler.FinalBalance)
	api.GET(WithdrawalsRoute, walletHandler.Withdrawals)
	api.GET(MyPlansRoute, plansHandler.MyPlans)

	api.POST(DepositRoute, middlewares.RateLimit(limits.Deposit), walletHandler.Deposit)
	api.POST(WithdrawRoute, middlewares.RateLimit(limits.Withdraw), walletHandler.Withdraw)
	api.POST(PurchasePlanRoute, middlewares.RateLimit(limits.Purchase), plansHandler.Purchase)

	admin := api.Group("", middlewares.AdminRequired(), middlewares.RateLimit(limits.Admin))
	admin.GET(DepositsRoute, adminHandler.ListDeposits)
	admin.GET(PendingDepositsRoute, adminHandler.PendingDeposits)
	admin.POST(VerifyDepositRoute, adminHandler.VerifyDeposit)
	admin.POST(VerifyWithdrawalRoute, adminHandler.VerifyWithdrawal)
	admin.PUT(AmendPlanRoute, adminHandler.AmendPlanAmount)
	return r
}
