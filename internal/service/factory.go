package service

import (
	"fmt"

	"github.com/fsdevblog/groph-wallet/internal/service/psswd"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
)

type AppServices struct {
	UserService   *UserService
	WalletService *WalletService
	PlanService   *PlanService
	AdminService  *AdminService
}

// Factory собирает сервисы приложения. plans - неизменяемый каталог планов, now - часы для начислений
// (nil - time.Now).
func Factory(unitOfWork uow.UOW, jwtSecret []byte, plans PlanCatalog, now Clock) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.Hasher{})
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	return &AppServices{
		UserService:   userService,
		WalletService: NewWalletService(unitOfWork, plans, now),
		PlanService:   NewPlanService(unitOfWork, plans, now, PlanTransactionID),
		AdminService:  NewAdminService(unitOfWork, plans, now),
	}, nil
}
