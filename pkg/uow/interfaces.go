// Package uow единица работы поверх pgxpool: репозитории регистрируются по имени и получают соединение
// текущей транзакции. Сервисы кошелька зависят только от интерфейсов пакета, поэтому хранилище в памяти
// (memrepo) подставляется вместо postgres без изменений в сервисах.
package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TX репозитории, привязанные к одной транзакции.
type TX interface {
	Get(name RepositoryName) (Repository, error)
}

// DBTX общее подмножество *pgxpool.Pool и pgx.Tx, с которым работают репозитории pgrepo.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

// UOW реализуют UnitOfWork (postgres) и memrepo.Store.
type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	// Do выполняет fn в транзакции на запись (read committed). Проверка баланса и списание должны идти
	// в одном Do под блокировкой пользователя.
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	// View выполняет fn в транзакции только на чтение с единым снимком данных (repeatable read): баланс,
	// планы и выводы пользователя читаются согласованно.
	View(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	// GetRepository репозиторий вне транзакции, для одиночных запросов.
	GetRepository(name RepositoryName) (Repository, error)
}
