package servecmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dkovalev/gamestore/internal/auth/token"
	"github.com/dkovalev/gamestore/internal/cli/common"
	"github.com/dkovalev/gamestore/internal/config"
	storegorm "github.com/dkovalev/gamestore/internal/repo/gorm/store"
	httpserver "github.com/dkovalev/gamestore/internal/server/http"
	authsvc "github.com/dkovalev/gamestore/internal/service/auth"
	catalogsvc "github.com/dkovalev/gamestore/internal/service/catalog"
	orderssvc "github.com/dkovalev/gamestore/internal/service/orders"
	reviewssvc "github.com/dkovalev/gamestore/internal/service/reviews"
	userssvc "github.com/dkovalev/gamestore/internal/service/users"
)

func openDB(cfg config.DB) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dial = sqlite.Open(cfg.DSN)
	case "postgres":
		dial = gpostgres.Open(cfg.DSN)
	case "mysql":
		dial = gmysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	return gorm.Open(dial, &gorm.Config{TranslateError: true})
}

// New returns the `gamestore serve` command.
func New() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game store API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			common.SetupLogger(cfg.Log)

			db, err := openDB(cfg.DB)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			if err := storegorm.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			store := storegorm.New(db)

			tokens, err := token.NewManager(cfg.Auth.Secret, cfg.Auth.TTL(), cfg.Auth.Algorithm)
			if err != nil {
				return fmt.Errorf("token manager: %w", err)
			}

			srv := httpserver.NewServer(
				authsvc.NewService(store, tokens),
				userssvc.NewService(store),
				catalogsvc.NewService(store),
				orderssvc.NewService(store),
				reviewssvc.NewService(store),
				tokens,
			)
			slog.Info("starting", "addr", cfg.Addr, "db_driver", cfg.DB.Driver)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Run(cfg.Addr) }()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case sv := <-sig:
				slog.Info("shutting down", "signal", sv.String())
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					return err
				}
				return <-errCh
			}
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file path")
	return cmd
}
