package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/internal/transport/api/tokens"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

var ErrAdminConflict = errors.New("user exists and is not an administrator")

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
	psswdHasher    PasswordHasher
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
		psswdHasher:    hasher,
	}, nil
}

type RegisterUserArgs struct {
	Username string
	Password string
}

// Register создает юзера в базе данных. После успешного создания генерирует jwt token. Возвращает 3 значения:
// созданный юзер, токен и ошибку. Занятый юзернейм - domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.psswdHasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}
	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var userErr, tokenErr error
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Username: args.Username,
			Password: password,
			Role:     domain.RoleUser,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", wrapErr(ctx, "registering user", txErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login аутентифицирует пользователя. Неизвестный юзернейм - domain.ErrRecordNotFound,
// неверный пароль - domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	if err != nil {
		return nil, "", wrapErr(ctx, "login", err)
	}
	if !s.psswdHasher.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)
	}
	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %w", tokenErr)
	}
	return user, token, nil
}

// EnsureAdmin создает администратора при старте приложения, если его еще нет. Существующий пользователь
// с тем же именем, но без роли администратора, дает ErrAdminConflict.
func (s *UserService) EnsureAdmin(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	switch {
	case err == nil:
		if !existing.IsAdmin() {
			return nil, fmt.Errorf("ensure admin %s: %w", args.Username, ErrAdminConflict)
		}
		return existing, nil
	case !errors.Is(err, domain.ErrRecordNotFound):
		return nil, fmt.Errorf("ensure admin: %w", err)
	}

	password, hashErr := s.psswdHasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("ensure admin: %s", hashErr.Error())
	}
	admin, err := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		Username: args.Username,
		Password: password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("ensure admin: %w", err)
	}
	return admin, nil
}
