package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/logger"
	"github.com/fsdevblog/groph-wallet/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-wallet/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-wallet/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-wallet/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)

// routerSuite общая обвязка тестов хэндлеров: роутер на моках сервисов и токены юзера и админа.
type routerSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret []byte

	userService   *mocks.MockUserServicer
	walletService *mocks.MockWalletServicer
	planService   *mocks.MockPlanServicer
	adminService  *mocks.MockAdminServicer
	health        *mocks.MockHealthChecker

	userID     int64
	adminID    int64
	userToken  string
	adminToken string
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.jwtSecret = []byte("super secret key")
	s.userService = mocks.NewMockUserServicer(mockCtrl)
	s.walletService = mocks.NewMockWalletServicer(mockCtrl)
	s.planService = mocks.NewMockPlanServicer(mockCtrl)
	s.adminService = mocks.NewMockAdminServicer(mockCtrl)
	s.health = mocks.NewMockHealthChecker(mockCtrl)

	// лимиты с запасом, чтобы не мешать тестам хэндлеров.
	limiter := func() *middlewares.RateLimiter { return middlewares.NewRateLimiter(1000, time.Minute) }
	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		UserService:    s.userService,
		WalletService:  s.walletService,
		PlanService:    s.planService,
		AdminService:   s.adminService,
		HealthChecker:  s.health,
		JWTSecretKey:   s.jwtSecret,
		ServiceTimeout: time.Second,
		RateLimits: &RateLimits{
			Deposit:  limiter(),
			Withdraw: limiter(),
			Purchase: limiter(),
			Admin:    limiter(),
		},
		Now: func() time.Time { return testNow },
	})

	s.userID = 1
	s.adminID = 2
	var err error
	s.userToken, err = tokens.GenerateUserJWT(s.userID, domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.adminToken, err = tokens.GenerateUserJWT(s.adminID, domain.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
}

// do выполняет запрос. payload сериализуется в JSON, строка отправляется как есть.
func (s *routerSuite) do(method, route, token string, payload any) *http.Response {
	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(p)
	default:
		b, err := testutils.JSONBody(p)
		s.Require().NoError(err)
		body = b
	}
	opts := []func(*testutils.RequestOptions){testutils.WithJSON()}
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + route,
		Body:   body,
	}, opts...)
	s.Require().NoError(err)
	return res
}

// doJSON выполняет запрос и возвращает статус и разобранное тело.
func (s *routerSuite) doJSON(method, route, token string, payload any) (int, map[string]any) {
	res := s.do(method, route, token, payload)
	var body map[string]any
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	return res.StatusCode, body
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

type moneyMatcher struct {
	want decimal.Decimal
}

// moneyEq сравнивает domain.Money по значению, а не по представлению decimal.
func moneyEq(v string) gomock.Matcher {
	return moneyMatcher{want: dec(v)}
}

func (m moneyMatcher) Matches(x any) bool {
	switch v := x.(type) {
	case domain.Money:
		return v.Decimal().Equal(m.want)
	case *domain.Money:
		return v != nil && v.Decimal().Equal(m.want)
	}
	return false
}

func (m moneyMatcher) String() string {
	return fmt.Sprintf("money equal to %s", m.want)
}
