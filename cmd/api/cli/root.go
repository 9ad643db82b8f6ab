// Package cli defines the command tree of the user container demo.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"user-container-demo/cmd/api/app"
	"user-container-demo/cmd/api/di"
	"user-container-demo/internal/config"
	"user-container-demo/internal/usecase/user"
)

type rootOptions struct {
	configPath string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "user-container-demo",
		Short: "Store users and show them through in-memory containers",
		Long: `Adds users to a local database and renders the stored users through
one of nine container shapes (list, array, table, jagged, dictionary,
queue, stack, set, linkedlist), or serves the same operations over
REST and gRPC.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", app.ConfigPath(), "directory containing app.env")

	cmd.AddCommand(
		newServeCommand(opts),
		newAddCommand(opts),
		newLoadCommand(opts),
		newKindsCommand(),
	)
	return cmd
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// bootstrap loads configuration and builds the logger.
// Reports own stdout, so one-shot commands move console logging to stderr.
func (o *rootOptions) bootstrap(reportsOnStdout bool) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if reportsOnStdout && (cfg.Logger.OutputPath == "stdout" || cfg.Logger.OutputPath == "") {
		cfg.Logger.OutputPath = "stderr"
	}

	l, err := app.InitLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// withUsecase opens the store for a single command and closes it afterwards.
func (o *rootOptions) withUsecase(ctx context.Context, fn func(user.Usecase) error) (err error) {
	cfg, l, err := o.bootstrap(true)
	if err != nil {
		return err
	}
	defer func() { _ = app.SyncLogger(l) }()

	container, err := di.NewContainer(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := container.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(container.UserUC)
}
