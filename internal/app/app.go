package app

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/catalog"
	"github.com/fsdevblog/groph-wallet/internal/config"
	"github.com/fsdevblog/groph-wallet/internal/repository/memrepo"
	"github.com/fsdevblog/groph-wallet/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-wallet/internal/repository/repoargs"
	"github.com/fsdevblog/groph-wallet/internal/service"
	"github.com/fsdevblog/groph-wallet/internal/transport/api"
	"github.com/fsdevblog/groph-wallet/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// storage хранилище приложения. checker nil для хранилища в памяти.
type storage struct {
	uow     uow.UOW
	checker api.HealthChecker
	close   func()
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)

	plans, err := a.loadCatalog()
	if err != nil {
		return errors.Wrap(err, "app run")
	}

	store, err := a.openStorage(notifyCtx)
	if err != nil {
		return errors.Wrap(err, "app run")
	}
	defer store.close()

	services, err := service.Factory(store.uow, []byte(a.Config.JWTUserSecret), plans, time.Now)
	if err != nil {
		return errors.Wrap(err, "app run")
	}

	if a.Config.AdminLogin != "" {
		admin, adminErr := services.UserService.EnsureAdmin(notifyCtx, service.RegisterUserArgs{
			Username: a.Config.AdminLogin,
			Password: a.Config.AdminPassword,
		})
		if adminErr != nil {
			return errors.Wrap(adminErr, "app run")
		}
		a.Logger.WithField("admin_id", admin.ID).Info("admin account ready")
	}

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		UserService:    services.UserService,
		WalletService:  services.WalletService,
		PlanService:    services.PlanService,
		AdminService:   services.AdminService,
		HealthChecker:  store.checker,
		JWTSecretKey:   []byte(a.Config.JWTUserSecret),
		ServiceTimeout: a.Config.ServiceTimeout,
	})

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return errors.Wrap(err, "http server")
	}
}

func (a *App) loadCatalog() (*catalog.Catalog, error) {
	if a.Config.PlansFile == "" {
		return catalog.Default(), nil
	}
	plans, err := catalog.LoadFile(a.Config.PlansFile)
	if err != nil {
		return nil, errors.Wrapf(err, "loading plans from %s", a.Config.PlansFile)
	}
	a.Logger.WithField("plans", plans.Names()).Info("plans catalog loaded")
	return plans, nil
}

func (a *App) openStorage(ctx context.Context) (*storage, error) {
	if a.Config.StorageDriver == config.StorageDriverMemory {
		a.Logger.Warn("using in-memory storage, data is lost on restart")
		return &storage{uow: memrepo.New(time.Now), close: func() {}}, nil
	}

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, errors.Wrap(connErr, "connecting postgres")
	}
	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		conn.Close()
		return nil, uowErr
	}
	return &storage{uow: unitOfWork, checker: conn, close: conn.Close}, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.CashTransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCashTransactionRepository(dbtx)
		},
		repoargs.DepositRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDepositRepository(dbtx)
		},
		repoargs.WithdrawalRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWithdrawalRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, errors.Wrapf(regErr, "init UOW: %s", name)
		}
	}
	return unitOfWork, nil
}
