package main

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mtorres82/tensio/internal/store"
	"github.com/mtorres82/tensio/internal/webserver"
	"github.com/spf13/afero"
)

var version string = "unknown"

func main() {
	var cfg Config
	var appFs = afero.NewOsFs()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Errorf("error parsing configuration from environment variables: %w", err))
	}

	repo := store.NewCSV(appFs, cfg.DataPath)

	app := webserver.New(webserver.Config{
		Version:       version,
		RollingWindow: cfg.RollingWindow,
	}, repo)

	fmt.Printf("Tensio version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
