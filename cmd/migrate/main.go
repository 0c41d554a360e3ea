// migrate applies the embedded phone_numbers schema migrations.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"flare/internal/config"
	"flare/internal/logging"
	"flare/internal/store/pg"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	cfg := config.LoadMigrate()
	logging.Init("migrate", cfg.LogFormat, "info")

	if err := pg.Migrate(cfg.DBDSN, *direction); err != nil {
		if errors.Is(err, pg.ErrNoChange) {
			slog.Info("migrate no change", "direction", *direction)
			return
		}
		slog.Error("migrate failed", "direction", *direction, "err", err)
		os.Exit(1)
	}
	slog.Info("migrate done", "direction", *direction)
}
