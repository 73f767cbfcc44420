package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/projection"
)

func newListCmd() *cobra.Command {
	var (
		flagFilter string
		flagSort   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trip points",
		Long:  "List trip points, filtered and sorted the same way the board shows them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(flagFilter)
			if err != nil {
				return err
			}
			sort, err := parseSort(flagSort)
			if err != nil {
				return err
			}

			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			now := time.Now()
			points := projection.Project(s.points.Points(), filter, sort, now)
			if len(points) == 0 && filter != domain.FilterEverything {
				fmt.Printf("No %s points. Available filters: %s\n",
					filter, availableFilterList(s.points.Points(), now))
				return nil
			}
			return printPointTable(s, points)
		},
	}

	cmd.Flags().StringVar(&flagFilter, "filter", string(domain.FilterEverything), "filter (everything|future|present|past)")
	cmd.Flags().StringVar(&flagSort, "sort", string(domain.DefaultSortType), "sort (day|event|time|price|offer)")
	return cmd
}

// availableFilterList names the filters that currently match at least one
// point, in presentation order.
func availableFilterList(points []domain.Point, now time.Time) string {
	available := domain.AvailableFilters(points, now)
	names := ""
	for _, f := range domain.FilterTypes {
		if !available[f] {
			continue
		}
		if names != "" {
			names += ", "
		}
		names += string(f)
	}
	if names == "" {
		return "none"
	}
	return names
}

func parseFilter(raw string) (domain.FilterType, error) {
	f := domain.FilterType(raw)
	for _, known := range domain.FilterTypes {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", raw)
}

func parseSort(raw string) (domain.SortType, error) {
	s := domain.SortType(raw)
	for _, known := range domain.SortTypes {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown sort %q", raw)
}
