package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkraev/trip-planner/internal/config"
	"github.com/mkraev/trip-planner/internal/gateway"
	"github.com/mkraev/trip-planner/internal/model"
)

// session bundles the initialized models a command works with.
type session struct {
	cfg          config.Config
	log          *slog.Logger
	points       *model.Points
	destinations *model.Destinations
	offers       *model.Offers
}

// newSession loads configuration, connects the gateway, and initializes all
// three models. A reference dataset that fails to load degrades to an empty
// cache with a warning — points still render, just without names and offer
// titles. A point load failure is fatal for the command.
func newSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	gw := gateway.New(cfg.BaseURL, cfg.AuthToken)
	s := &session{
		cfg:          cfg,
		log:          log,
		points:       model.NewPoints(gw),
		destinations: model.NewDestinations(gw),
		offers:       model.NewOffers(gw),
	}

	if err := s.destinations.Init(ctx); err != nil {
		log.Warn("destinations unavailable, continuing degraded", "error", err)
	}
	if err := s.offers.Init(ctx); err != nil {
		log.Warn("offers unavailable, continuing degraded", "error", err)
	}
	if err := s.points.Init(ctx); err != nil {
		return nil, fmt.Errorf("loading points: %w", err)
	}
	return s, nil
}

// destinationName resolves a destination id for display, falling back to
// the raw id when the reference cache does not know it.
func (s *session) destinationName(id string) string {
	if d, ok := s.destinations.ByID(id); ok {
		return d.Name
	}
	return id
}
