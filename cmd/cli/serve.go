package cli

import (
	"context"
	"errors"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"os/signal"
	"recipehub/cmd/config"
	"recipehub/internal/utils/storage"
	"recipehub/pkg/user"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := opts.connect(true)
			if err != nil {
				return err
			}
			defer closeDB(db)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := storage.New(ctx, cfg)
			if err != nil {
				return err
			}

			services := config.NewServices(cfg, db, store)
			app, logFile, err := config.NewApp(cfg, db, services)
			if err != nil {
				return err
			}
			defer func() {
				if err := logFile.Close(); err != nil {
					log.Errorf("close access log: %v", err)
				}
			}()

			go user.RunTokenSweeper(ctx, services.User, cfg.SweepInterval())

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Listen(":" + cfg.AppPort)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		},
	}
}
