package repoargs

type RepositoryName string

const (
	UserRepoName            RepositoryName = "user"
	CashTransactionRepoName RepositoryName = "cash_transaction"
	DepositRepoName         RepositoryName = "deposit"
	WithdrawalRepoName      RepositoryName = "withdrawal"
)
