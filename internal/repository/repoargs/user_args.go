package repoargs

import "github.com/fsdevblog/groph-wallet/internal/domain"

type CreateUser struct {
	Username string
	Password string
	// Role пустая роль сохраняется как domain.RoleUser.
	Role domain.RoleType
}
