package cmd

import (
	"fmt"

	"asset-reconciler/core/config"
	"asset-reconciler/core/container"
	"asset-reconciler/core/database"
	"asset-reconciler/core/importer"
	"asset-reconciler/core/logger"
	"asset-reconciler/core/reconcile"
	"asset-reconciler/core/storage"
	"asset-reconciler/feature/history"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles the dependencies shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   storage.Client
	db      *gorm.DB
	history *history.Repository
}

// newApp loads configuration and opens the optional journal database.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	a := &app{cfg: cfg, logger: logg, store: store}

	// The journal is optional: reconciling works without it.
	if db, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional journal database connection failed", zap.Error(err))
	} else {
		repo := history.NewRepository(db, logg)
		if err := repo.Migrate(); err != nil {
			logg.Warn("Journal migration failed, journal disabled", zap.Error(err))
		} else {
			a.db = db
			a.history = repo
			logg.Debug("Journal enabled", zap.String("driver", cfg.Database.Driver))
		}
	}

	return a, nil
}

// reconciler builds a Reconciler over session using the configured importer
// and placement.
func (a *app) reconciler(session *container.Session, confirmer reconcile.Confirmer, placement string) (*reconcile.Reconciler, error) {
	imp, err := importer.New(a.cfg.Importer, a.store, a.cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	if placement == "" {
		placement = a.cfg.Reconcile.Placement
	}
	place, err := reconcile.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}

	opts := []reconcile.Option{
		reconcile.WithLogger(a.logger),
		reconcile.WithPlacement(place),
	}
	if a.history != nil {
		opts = append(opts, reconcile.WithRecorder(a.history))
	}
	return reconcile.New(session, imp, confirmer, opts...), nil
}
