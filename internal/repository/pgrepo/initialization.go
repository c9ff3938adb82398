package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	connectMaxAttempts   uint = 30
	connectRetryInterval      = 3 * time.Second
)

// Connect открывает пул соединений с повторными попытками (база может подниматься дольше сервиса)
// и применяет миграции из migrationsDir.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	type connResult struct {
		conn *pgxpool.Pool
		err  error
	}
	connChan := make(chan connResult, 1)
	log := logger.Component(l, "postgres")

	go func() {
		var attempts uint
		for {
			conn, connErr := newPostgresConnection(ctx, dsn)
			if connErr == nil {
				connChan <- connResult{conn: conn}
				return
			}
			attempts++
			if attempts >= connectMaxAttempts {
				connChan <- connResult{
					err: fmt.Errorf("init postgres connection after %d attempts: %w", attempts, connErr),
				}
				return
			}
			log.WithError(connErr).
				WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, connectMaxAttempts)).
				Warnf("init postgres connection error, retrying in %.f seconds", connectRetryInterval.Seconds())

			select {
			case <-ctx.Done():
				connChan <- connResult{err: ctx.Err()}
				return
			case <-time.After(connectRetryInterval):
			}
		}
	}()

	res := <-connChan
	if res.err != nil {
		return nil, fmt.Errorf("init postgres connection: %w", res.err)
	}

	if err := postgresMigrate(migrationsDir, dsn); err != nil {
		res.conn.Close()
		return nil, err
	}
	log.Info("postgres connected, migrations applied")
	return res.conn, nil
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	// Проверяем, что соединение работает (Ping)
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
