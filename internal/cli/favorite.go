package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkraev/trip-planner/internal/domain"
)

func newFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a point's favorite flag",
		Long:  "Toggle the favorite flag on a point. This is the single-field patch path: the rest of the point is untouched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			point, ok := s.points.ByID(args[0])
			if !ok {
				return fmt.Errorf("unknown point %q", args[0])
			}
			point.IsFavorite = !point.IsFavorite

			if err := s.points.Update(cmd.Context(), domain.ScopePatch, point); err != nil {
				return err
			}
			fmt.Printf("Point %s favorite: %v\n", point.ID, point.IsFavorite)
			return nil
		},
	}
}
