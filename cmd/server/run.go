package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rhyrak/campus-sim/internal/catalog"
	"github.com/rhyrak/campus-sim/internal/sim"
	"github.com/rhyrak/campus-sim/internal/storage/sqlite"
	"github.com/rhyrak/campus-sim/pkg/model"
)

type runRequest struct {
	Track      string `json:"track" binding:"required"`
	Background string `json:"background" binding:"omitempty,oneof=poor ok mid rich"`
	Route      string `json:"route" binding:"omitempty,oneof=research career abroad"`
	Seed       int64  `json:"seed"`
}

// simulateAndArchive plays a full degree with the default policy and
// stores the summary.
func simulateAndArchive(ctx context.Context, store *sqlite.Store, logger *slog.Logger, req runRequest) (string, *sim.Summary, error) {
	id := uuid.NewString()
	e, err := sim.NewEngine(sim.Options{
		Track:      catalog.NormalizeTrack(req.Track),
		Background: model.ParseBackground(req.Background),
		Route:      model.ParseRoute(req.Route),
		Seed:       req.Seed,
		Logger:     logger.With("run", id),
		AutoEnroll: true,
	})
	if err != nil {
		return "", nil, err
	}
	summary, err := e.Run(ctx, nil, nil)
	if err != nil {
		return "", nil, fmt.Errorf("run %s: %w", id, err)
	}
	if _, err := store.SaveRun(ctx, sqlite.RecordFromSummary(id, req.Seed, summary)); err != nil {
		return "", nil, fmt.Errorf("archive %s: %w", id, err)
	}
	return id, summary, nil
}
