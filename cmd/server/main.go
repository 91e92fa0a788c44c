package main

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/liamqma/sanmou-yanwu/internal/advisor"
	"github.com/liamqma/sanmou-yanwu/internal/battle"
	"github.com/liamqma/sanmou-yanwu/internal/config"
	"github.com/liamqma/sanmou-yanwu/internal/httpapi"
	"github.com/liamqma/sanmou-yanwu/internal/hub"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger isn't up yet.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	var log *zap.Logger
	if cfg.Debug {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	records, err := loadRecords(ctx, cfg, log)
	if err != nil {
		log.Fatal("loading battle records", zap.Error(err))
	}
	records = battle.Dedupe(records)
	snap := battle.Aggregate(records)
	log.Info("battle history loaded",
		zap.Int("records", len(records)),
		zap.Int("heroes", len(snap.Heroes)),
		zap.Int("skills", len(snap.Skills)),
	)

	adv, err := advisor.New(cfg.Scoring, snap)
	if err != nil {
		log.Fatal("building advisor", zap.Error(err))
	}

	h := hub.NewHub(ctx, log)
	srv := httpapi.NewServer(h, adv, snap, log)
	handler := httpapi.SetupRoutes(srv, h, log)

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// loadRecords prefers the database when configured, falling back to the
// on-disk battle log directory.
func loadRecords(ctx context.Context, cfg config.Config, log *zap.Logger) ([]battle.Record, error) {
	if cfg.DatabaseURL != "" {
		store, err := battle.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("loading battles from database")
		return store.List(ctx)
	}
	log.Info("loading battles from directory", zap.String("dir", cfg.BattlesDir))
	return battle.LoadDir(cfg.BattlesDir)
}
