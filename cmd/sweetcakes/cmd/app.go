package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/catalog"
	"github.com/wexinc/sweetcakes/internal/config"
	apperrors "github.com/wexinc/sweetcakes/internal/errors"
	"github.com/wexinc/sweetcakes/internal/logging"
	"github.com/wexinc/sweetcakes/internal/storage"
	"github.com/wexinc/sweetcakes/internal/toast"
)

// app holds the dependencies shared by the cart commands. It owns the
// cart store for the lifetime of one command.
type app struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	logger  *logging.Logger
	kv      storage.KV
	store   *cart.Store
}

// appOptions selects which dependencies a command needs.
type appOptions struct {
	// withCart opens storage and the cart store.
	withCart bool
	// printToasts prints cart notifications to the command output.
	printToasts bool
}

// loadConfig loads the config named by --config, or the default config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.LoadOrDefault("")
		path = config.DefaultConfigPath
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, configError(path, err)
	}
	return cfg, nil
}

// configError converts a config.LoadError into a user-facing error.
func configError(path string, err error) error {
	if apperrors.Is(err, config.ErrNotFound) {
		return apperrors.ConfigNotFound(path)
	}
	var verrs config.ValidationErrors
	if apperrors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.ConfigValidationError(verrs[0].Field, verrs.Error(), nil).
			WithDetails("path", path)
	}
	return apperrors.ConfigParseError(path, err)
}

// openApp wires config, logging, catalog and (optionally) the cart store.
func openApp(cmd *cobra.Command, opts appOptions) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithCommand(ctx, cmd.CommandPath())
	ctx = logging.WithCartKey(ctx, cfg.Storage.Key)

	a := &app{cfg: cfg}
	a.logger = newLogger(cmd, cfg).WithContext(ctx)

	a.catalog, err = catalog.Load(cfg.Catalog.Path)
	if err != nil {
		a.Close()
		return nil, err
	}

	if !opts.withCart {
		return a, nil
	}

	path := cfg.StoragePath()
	a.kv, err = storage.Open(cfg.Storage.Driver, path)
	if err != nil {
		a.Close()
		return nil, apperrors.StorageUnavailable(cfg.Storage.Driver.String(), path, err)
	}

	storeOpts := []cart.Option{
		cart.WithLogger(a.logger),
		cart.WithNotifier(toast.NewLogSink(a.logger)),
	}
	if opts.printToasts {
		storeOpts = append(storeOpts, cart.WithNotifier(toast.NewPrinter(cmd.OutOrStdout())))
	}
	a.store = cart.New(cart.NewKVPersister(a.kv, cfg.Storage.Key), storeOpts...)

	a.logger.Debug("cart opened",
		"driver", cfg.Storage.Driver.String(),
		"path", path,
		"items", a.store.Len(),
	)
	return a, nil
}

// newLogger creates the file logger described by cfg. Logging problems
// never stop a command; they fall back to a no-op logger.
func newLogger(cmd *cobra.Command, cfg *config.Config) *logging.Logger {
	lc, err := cfg.Logging()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, logging disabled\n", err)
		return logging.NewNoop()
	}
	logger, err := logging.New(lc)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, logging disabled\n", err)
		return logging.NewNoop()
	}
	logging.SetGlobal(logger)
	return logger
}

// money formats an amount in the configured currency.
func (a *app) money(amount decimal.Decimal) string {
	return cart.FormatMoney(a.cfg.Shop.Currency, amount)
}

// Close releases the store, storage and logger.
func (a *app) Close() error {
	var firstErr error
	if a.store != nil {
		// Store.Close closes the persister, which closes the KV
		if err := a.store.Close(); err != nil {
			firstErr = err
		}
	} else if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			firstErr = err
		}
	}
	if err := logging.CloseGlobal(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
