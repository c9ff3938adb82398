package uow

import "errors"

// Ошибки реестра репозиториев: неверная регистрация или запрос незарегистрированного имени.
var (
	ErrRepositoryNotRegistered     = errors.New("[uow] repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository already registered")
	ErrInvalidRepositoryType       = errors.New("[uow] invalid repository type")
	ErrNilRepositoryFactory        = errors.New("[uow] nil repository factory")
)
