// Command devapi serves a local projects API from a JSON file so the
// portfolio can be run without the hosted backend.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/Zachkp/portfolio/internal/devapi"
)

type config struct {
	Addr     string `env:"DEVAPI_ADDR" envDefault:":8081"`
	DataFile string `env:"DEVAPI_DATA" envDefault:"data/projects.json"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse env: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.DataFile = os.Args[1]
	}

	svc, err := devapi.LoadFile(cfg.DataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load projects: %v\n", err)
		os.Exit(1)
	}

	slog.Info("devapi listening", "addr", cfg.Addr, "projects", svc.GetAll().Len())
	if err := http.ListenAndServe(cfg.Addr, devapi.Router(svc)); err != nil {
		slog.Error("devapi stopped", "error", err)
		os.Exit(1)
	}
}
