package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkraev/trip-planner/internal/model"
	"github.com/mkraev/trip-planner/internal/presenter"
	"github.com/mkraev/trip-planner/internal/render"
)

func newBoardCmd() *cobra.Command {
	var (
		flagFilter string
		flagSort   string
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Render the board the way the editor shows it",
		Long:  "Run the full presenter stack against a text renderer and print the resulting board: one line per point, or the loading/empty/error placeholder the editor would show.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(flagFilter)
			if err != nil {
				return err
			}
			sortType, err := parseSort(flagSort)
			if err != nil {
				return err
			}

			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			filterModel := model.NewFilter()
			sortModel := model.NewSort()
			board := render.NewBoard()

			list := presenter.NewList(cmd.Context(), presenter.Deps{
				Board:        board,
				Escape:       render.NewKeymap(),
				Points:       s.points,
				Destinations: s.destinations,
				Offers:       s.offers,
				Filter:       filterModel,
				Sort:         sortModel,
			})
			defer list.Close()

			// The session already loaded the collection; replay Init so the
			// presenter leaves its loading state, then apply the criteria.
			if err := s.points.Init(cmd.Context()); err != nil {
				return err
			}
			filterModel.Set(filter, false)
			sortModel.Set(sortType, false)

			return board.Render(os.Stdout)
		},
	}

	cmd.Flags().StringVar(&flagFilter, "filter", "everything", "filter (everything|future|present|past)")
	cmd.Flags().StringVar(&flagSort, "sort", "day", "sort (day|event|time|price|offer)")
	return cmd
}
