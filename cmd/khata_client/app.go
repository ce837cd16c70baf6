package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/digital_khata_client/internal/adapters/api"
	"github.com/SscSPs/digital_khata_client/internal/adapters/database/pgsql"
	"github.com/SscSPs/digital_khata_client/internal/adapters/storage"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/core/router"
	"github.com/SscSPs/digital_khata_client/internal/core/services"
	"github.com/SscSPs/digital_khata_client/internal/core/state"
	"github.com/SscSPs/digital_khata_client/internal/core/toast"
	"github.com/SscSPs/digital_khata_client/internal/utils/clock"
	"github.com/SscSPs/digital_khata_client/pkg/config"
	"github.com/SscSPs/digital_khata_client/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/afero"
)

// app is the client core shared by the HTTP shell and the terminal commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *state.Store
	document *state.DocumentRoot
	toaster  *toast.Toaster
	router   *router.Router
	client   *api.Client
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
}

// bootOptions selects the optional parts of the core.
type bootOptions struct {
	// offlineQueue connects the queue database when one is configured.
	offlineQueue bool
	// echo receives a copy of every notification. Nil keeps them in the store only.
	echo io.Writer
}

// newApp wires storage, state, toasts, routing and the backend client.
func newApp(ctx context.Context, opts *rootOptions, boot bootOptions) (*app, error) {
	cfg, logger := opts.cfg, opts.logger

	local, err := storage.NewFileStorage(afero.NewOsFs(), cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	doc := state.NewDocumentRoot()
	store := state.NewStore(local, doc, logger)
	store.Mount(state.StaticPreference(cfg.PrefersDark))

	clk := clock.Real{}
	toaster := toast.NewToaster(store, clk, cfg.ToastTimeout, logger)
	toaster.Start()
	rt := router.NewRouter(store, logger)
	rt.Start()

	client, err := api.NewClient(api.Config{
		BackendURL: cfg.BackendURL,
		BasePath:   cfg.APIBasePath,
		Timeout:    cfg.HTTPTimeout,
	}, local, logger)
	if err != nil {
		toaster.Stop()
		rt.Stop()
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		document: doc,
		toaster:  toaster,
		router:   rt,
		client:   client,
	}

	repos := repositories.RepositoryProvider{LocalStorage: local}
	if boot.offlineQueue && cfg.OfflineQueueEnabled() {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsSource, logger); err != nil {
			a.close()
			return nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to initialize offline queue database: %w", err)
		}
		a.pool = pool
		repos.OfflineInvoiceRepo = pgsql.NewPgxOfflineInvoiceRepository(pool)
		logger.Info("Offline invoice queue enabled")
	}

	var notifier services.Notifier = toaster
	if boot.echo != nil {
		notifier = &echoNotifier{next: toaster, out: boot.echo}
	}
	a.services = services.NewServiceContainer(client, repos, store, rt, notifier, clk)
	return a, nil
}

// syncScheduler builds the connectivity monitor. It also flushes the offline
// queue when one is configured.
func (a *app) syncScheduler() *services.SyncScheduler {
	return services.NewSyncScheduler(a.client, a.services.Offline, a.toaster, a.cfg.SyncInterval, a.cfg.ProbeInterval, a.logger)
}

func (a *app) close() {
	a.toaster.Stop()
	a.router.Stop()
	if a.pool != nil {
		database.ClosePgxPool(a.pool)
	}
}

// echoNotifier prints notifications for terminal use and forwards them to the toaster.
type echoNotifier struct {
	next services.Notifier
	out  io.Writer
}

func (n *echoNotifier) Success(message string) int64 {
	n.print(domain.NotificationSuccess, message)
	return n.next.Success(message)
}

func (n *echoNotifier) Error(message string) int64 {
	n.print(domain.NotificationError, message)
	return n.next.Error(message)
}

func (n *echoNotifier) Info(message string) int64 {
	n.print(domain.NotificationInfo, message)
	return n.next.Info(message)
}

func (n *echoNotifier) print(kind domain.NotificationKind, message string) {
	fmt.Fprintf(n.out, "[%s] %s\n", kind, message)
}
