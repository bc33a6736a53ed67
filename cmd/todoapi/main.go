package main

import (
	"io"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"todoapi/internal/config"
	"todoapi/internal/http/handlers"
	applog "todoapi/internal/log"
	"todoapi/internal/observability"
	"todoapi/internal/repos"
	"todoapi/internal/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			out = io.MultiWriter(os.Stdout, f)
		}
	}
	log.SetOutput(out)
	applog.SetOutput(out)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		hash, err := security.NewHasher(cfg.BcryptCost).Hash(cfg.AdminPassword)
		if err != nil {
			log.Fatal(err)
		}
		if err := repos.SeedAdmin(db, cfg.AdminEmail, hash); err != nil {
			log.Fatal(err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	deps := handlers.NewDeps(db, cfg, metrics)
	deps.AccessLog = out
	app := handlers.NewApp(deps)

	log.Printf("[server] listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
