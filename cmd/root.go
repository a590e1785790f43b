package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"cloudbox/internal/config"
	"cloudbox/internal/domain"
	"cloudbox/internal/logging"
	"cloudbox/internal/repository"
	"cloudbox/internal/service"
)

// options общие для всех команд
type options struct {
	configPath string
	v          *viper.Viper
	cfg        *config.Config
}

var opts = &options{v: viper.New()}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cloudbox",
		Short:         "CloudBox storage dashboard backend",
		Long:          "CloudBox serves the in-memory file collection behind the storage dashboard: listings, favorites, trash, sharing metadata and analytics.",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.v, opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			return logging.Init(logging.Config{
				Level:      cfg.Log.Level,
				Format:     cfg.Log.Format,
				File:       cfg.Log.File,
				MaxSizeMB:  cfg.Log.MaxSizeMB,
				MaxBackups: cfg.Log.MaxBackups,
				MaxAgeDays: cfg.Log.MaxAgeDays,
				Compress:   cfg.Log.Compress,
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is ./config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "json", "log format (json, console)")
	flags.String("seed", "", "YAML file with the initial collection (default is the built-in demo data)")

	opts.v.BindPFlag("log.level", flags.Lookup("log-level"))
	opts.v.BindPFlag("log.format", flags.Lookup("log-format"))
	opts.v.BindPFlag("storage.seed_file", flags.Lookup("seed"))

	cmd.Version = fmt.Sprintf("%s.%s", version, commit)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cloudbox %s (%s)\n", version, commit)
		},
	}
}

const dbRetryDelay = 5 * time.Second

// app содержит собранные репозитории и сервисы
type app struct {
	db        *sqlx.DB
	files     *repository.FileRepository
	settings  service.SettingsStore
	fileSvc   *service.FileService
	trashSvc  *service.TrashService
	shareSvc  *service.ShareService
	analytics *service.AnalyticsService
	sessions  *service.SessionService
}

// buildApp загружает seed и поднимает хранилище настроек.
// С withDatabase=false настройки всегда хранятся в памяти.
func buildApp(ctx context.Context, cfg *config.Config, withDatabase bool) (*app, error) {
	seed, err := repository.LoadSeed(cfg.Storage.SeedFile)
	if err != nil {
		return nil, err
	}

	files, err := repository.NewFileRepository(seed.Files)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	a := &app{files: files}

	if withDatabase && cfg.Database.Enabled() {
		db, err := repository.ConnectWithRetry(ctx, cfg.Database, 5, dbRetryDelay)
		if err != nil {
			return nil, err
		}
		if err := repository.RunMigrations(cfg.Database); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
		a.settings = repository.NewSettingsRepository(db)
		logging.L().Info("using postgres settings store", zap.String("host", cfg.Database.Host))
	} else {
		mem := repository.NewMemorySettingsRepository()
		if err := mem.SaveTrashSettings(ctx, &domain.TrashSettings{RetentionPeriod: cfg.Trash.RetentionPeriod}); err != nil {
			return nil, err
		}
		a.settings = mem
	}

	a.fileSvc = service.NewFileService(files)
	a.trashSvc = service.NewTrashService(files, a.settings)
	a.shareSvc = service.NewShareService(files)
	a.analytics = service.NewAnalyticsService(files, cfg.Storage.QuotaBytes)
	a.sessions = service.NewSessionService(a.settings, seed.User)

	return a, nil
}

func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logging.L().Warn("error closing database connection", zap.Error(err))
		}
	}
}
