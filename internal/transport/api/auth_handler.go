package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	handlerOpts
	userService UserServicer
}

func NewAuthHandler(userService UserServicer, opts handlerOpts) *AuthHandler {
	return &AuthHandler{
		handlerOpts: opts,
		userService: userService,
	}
}

type UserRegisterParams struct {
	Username string `binding:"required,min=1,max=50"  json:"login"`
	Password string `binding:"required,min=6,max=72" json:"password"`
}

type UserResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"login"`
	Role      domain.RoleType `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func newAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{
		Success: true,
		Token:   token,
		User: UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}
}

// Register POST RouteGroup + RegisterRoute. Регистрирует пользователя и аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	user, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			abortWithError(c, http.StatusConflict, errors.New("user with this login already exists"), gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, createErr)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusCreated, newAuthResponse(user, jwtToken))
}

type UserLoginParams struct {
	Username string `binding:"required,min=1,max=50" json:"login"`
	Password string `binding:"required,min=1,max=72" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре логин/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := h.serviceContext(c)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, newAuthResponse(user, token))
}
