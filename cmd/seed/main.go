// Command seed writes the default settings rows. Running it repeatedly is
// safe: existing keys are overwritten with the default values.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kedai-ramen/site-backend/internal/platform/config"
	"github.com/kedai-ramen/site-backend/internal/platform/logging"
	"github.com/kedai-ramen/site-backend/internal/platform/startup"
	"github.com/kedai-ramen/site-backend/internal/settings"
)

func main() {
	all := flag.Bool("all", false, "also seed the menu popup and price visibility flags")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	if err := run(*all, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(all bool, timeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	store, err := startup.OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	defaults := settings.InitialDefaults
	if all {
		defaults = append(append([]settings.Default{}, settings.InitialDefaults...), settings.MenuDefaults...)
	}

	if err := settings.Seed(ctx, store.Store, defaults); err != nil {
		return err
	}

	for _, d := range defaults {
		logger.Info("seeded", zap.String("key", d.Key), zap.String("value", d.Value))
	}
	return nil
}
