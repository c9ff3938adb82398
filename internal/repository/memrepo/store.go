// Package memrepo хранилище в памяти с тем же контрактом, что и pgrepo. Используется для локального запуска
// без базы (STORAGE_DRIVER=memory) и в тестах конкурентного доступа.
//
// Транзакции Do выполняются строго по одной; при ошибке fn состояние откатывается к снимку, снятому
// перед началом транзакции. View может выполняться параллельно с другими View, но не с Do.
package memrepo

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
)

var ErrRegisterNotSupported = errors.New("[memrepo] repositories are predefined")

type state struct {
	seq         int64
	users       []domain.User
	cash        []domain.CashTransaction
	deposits    []domain.Deposit
	withdrawals []domain.Withdrawal
	txIDs       map[string]struct{}
}

func (s *state) clone() state {
	return state{
		seq:         s.seq,
		users:       slices.Clone(s.users),
		cash:        slices.Clone(s.cash),
		deposits:    slices.Clone(s.deposits),
		withdrawals: slices.Clone(s.withdrawals),
		txIDs:       maps.Clone(s.txIDs),
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// registerTransactionID аналог реестра transaction_ids в postgres.
func (s *state) registerTransactionID(id string) error {
	if _, ok := s.txIDs[id]; ok {
		return fmt.Errorf("[memrepo] %w: %s", domain.ErrDuplicateTransactionID, id)
	}
	s.txIDs[id] = struct{}{}
	return nil
}

type Store struct {
	// txMu сериализует транзакции Do, mu защищает данные.
	txMu sync.RWMutex
	mu   sync.Mutex
	now  func() time.Time
	data state
}

// New создает пустое хранилище. now - источник времени для created_at/updated_at, nil означает time.Now.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:  now,
		data: state{txIDs: make(map[string]struct{})},
	}
}

func (s *Store) Register(uow.RepositoryName, uow.RepositoryFactory) error {
	return ErrRegisterNotSupported
}

func (s *Store) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(ctx, &transaction{store: s}); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) View(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	s.txMu.RLock()
	defer s.txMu.RUnlock()
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	return fn(ctx, &transaction{store: s})
}

// GetRepository возвращает репозиторий вне транзакции: каждый вызов ждет завершения текущей Do.
func (s *Store) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return s.repository(name, true)
}

func (s *Store) repository(name uow.RepositoryName, standalone bool) (uow.Repository, error) {
	b := base{store: s, standalone: standalone}
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return &UserRepository{base: b}, nil
	case repoargs.CashTransactionRepoName:
		return &CashTransactionRepository{base: b}, nil
	case repoargs.DepositRepoName:
		return &DepositRepository{base: b}, nil
	case repoargs.WithdrawalRepoName:
		return &WithdrawalRepository{base: b}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

type transaction struct {
	store *Store
}

func (t *transaction) Get(name uow.RepositoryName) (uow.Repository, error) {
	return t.store.repository(name, false)
}

type base struct {
	store      *Store
	standalone bool
}

// lock захватывает данные хранилища. Вне транзакции дополнительно ждем завершения текущей Do, чтобы не
// попасть под ее откат.
func (b base) lock() func() {
	if b.standalone {
		b.store.txMu.RLock()
	}
	b.store.mu.Lock()
	return func() {
		b.store.mu.Unlock()
		if b.standalone {
			b.store.txMu.RUnlock()
		}
	}
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrRecordNotFound)
}

func normalizePlan(plan string) string {
	return strings.ToUpper(plan)
}
