package domain

type RoleType string

const (
	RoleUser  RoleType = "USER"
	RoleAdmin RoleType = "ADMIN"
)

// OutcomeType тэг бизнес-результата операции. Бизнес-отказы возвращаются значением, а не ошибкой.
type OutcomeType string

const (
	OutcomeOK                  OutcomeType = "OK"
	OutcomeInsufficientBalance OutcomeType = "INSUFFICIENT_BALANCE"
	OutcomeDuplicatePlan       OutcomeType = "DUPLICATE_PLAN"
	OutcomeAlreadyInState      OutcomeType = "ALREADY_IN_STATE"
	OutcomeUserNotFound        OutcomeType = "USER_NOT_FOUND"
	OutcomePlanNotFound        OutcomeType = "PLAN_NOT_FOUND"
)
