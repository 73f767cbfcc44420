package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkraev/trip-planner/internal/summary"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the trip header: route, dates, total cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			sum := summary.Build(s.points.Points(), s.destinations.All(), s.offers.Groups())
			if sum.Route == "" && sum.TotalCost == 0 {
				fmt.Println("No points yet.")
				return nil
			}
			fmt.Println(sum.Route)
			fmt.Println(sum.Period)
			fmt.Printf("Total: €%d\n", sum.TotalCost)
			return nil
		},
	}
}
