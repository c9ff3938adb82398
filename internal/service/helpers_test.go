package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/internal/service/mocks"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-wallet/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

// mockDeps моки uow и всех репозиториев. Репозитории выдаются транзакцией mockTX по имени.
type mockDeps struct {
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	userRepo       *mocks.MockUserRepository
	cashRepo       *mocks.MockCashTransactionRepository
	depositRepo    *mocks.MockDepositRepository
	withdrawalRepo *mocks.MockWithdrawalRepository
}

func newMockDeps(ctrl *gomock.Controller) *mockDeps {
	d := &mockDeps{
		mockUOW:        uowmocks.NewMockUOW(ctrl),
		mockTX:         uowmocks.NewMockTX(ctrl),
		userRepo:       mocks.NewMockUserRepository(ctrl),
		cashRepo:       mocks.NewMockCashTransactionRepository(ctrl),
		depositRepo:    mocks.NewMockDepositRepository(ctrl),
		withdrawalRepo: mocks.NewMockWithdrawalRepository(ctrl),
	}
	d.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(d.userRepo, nil).AnyTimes()
	d.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CashTransactionRepoName)).Return(d.cashRepo, nil).AnyTimes()
	d.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.DepositRepoName)).Return(d.depositRepo, nil).AnyTimes()
	d.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WithdrawalRepoName)).Return(d.withdrawalRepo, nil).AnyTimes()
	return d
}

func runInTX(tx uow.TX) func(context.Context, func(context.Context, uow.TX) error) error {
	return func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
		return fn(ctx, tx)
	}
}

// expectDo мок транзакции на запись: fn выполняется с mockTX.
func (d *mockDeps) expectDo() *gomock.Call {
	return d.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(runInTX(d.mockTX))
}

func (d *mockDeps) expectView() *gomock.Call {
	return d.mockUOW.EXPECT().View(gomock.Any(), gomock.Any()).DoAndReturn(runInTX(d.mockTX))
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func confirmedCash(userID int64, amount string) domain.CashTransaction {
	return domain.CashTransaction{UserID: userID, Amount: dec(amount), Status: true, CreatedAt: testNow}
}

func planDeposit(id, userID int64, plan, amount string, createdAt time.Time) domain.Deposit {
	return domain.Deposit{
		ID:            id,
		UserID:        userID,
		Amount:        dec(amount),
		TransactionID: "PLAN-" + plan + "-TEST",
		IsVerified:    true,
		Plan:          &plan,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}
