package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkraev/trip-planner/internal/domain"
)

func newAddCmd() *cobra.Command {
	var (
		flagType        string
		flagDestination string
		flagFrom        string
		flagTo          string
		flagPrice       string
		flagOffers      []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new trip point",
		Long:  "Create a new trip point. The service assigns the id. Invalid prices and reversed dates are repaired by the same normalization the editor form applies.",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseWhen(flagFrom)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			to, err := parseWhen(flagTo)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			destinationID, err := resolveDestination(s, flagDestination)
			if err != nil {
				return err
			}

			draft := domain.Point{
				Type:          domain.PointType(flagType),
				DestinationID: destinationID,
				DateFrom:      from,
				DateTo:        to,
				BasePrice:     domain.ParsePrice(flagPrice),
				OfferIDs:      flagOffers,
			}

			if err := s.points.Create(cmd.Context(), domain.ScopeMinor, draft); err != nil {
				return err
			}
			created := s.points.Points()[0]
			fmt.Printf("Point %s created.\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagType, "type", string(domain.DefaultPointType), "point type (taxi|bus|train|ship|drive|flight|check-in|sightseeing|restaurant)")
	cmd.Flags().StringVar(&flagDestination, "destination", "", "destination id or name")
	cmd.Flags().StringVar(&flagFrom, "from", "", "start time, e.g. 2026-06-01T10:00")
	cmd.Flags().StringVar(&flagTo, "to", "", "end time, e.g. 2026-06-01T12:00")
	cmd.Flags().StringVar(&flagPrice, "price", "0", "base price")
	cmd.Flags().StringSliceVar(&flagOffers, "offers", nil, "selected offer ids")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

// parseWhen accepts a local date-time with or without seconds, or a bare
// date. An empty value yields the zero time, which normalization repairs.
func parseWhen(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", raw)
}

// resolveDestination accepts either a destination id or a (case-insensitive)
// name and returns the id.
func resolveDestination(s *session, raw string) (string, error) {
	if _, ok := s.destinations.ByID(raw); ok {
		return raw, nil
	}
	for _, d := range s.destinations.All() {
		if strings.EqualFold(d.Name, raw) {
			return d.ID, nil
		}
	}
	return "", fmt.Errorf("unknown destination %q", raw)
}
