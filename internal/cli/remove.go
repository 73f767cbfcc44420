package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkraev/trip-planner/internal/domain"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a trip point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.points.Delete(cmd.Context(), domain.ScopeMinor, args[0]); err != nil {
				return err
			}
			fmt.Printf("Point %s removed.\n", args[0])
			return nil
		},
	}
}
