package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mkraev/trip-planner/internal/domain"
)

// printPointTable prints points as a formatted table.
func printPointTable(s *session, points []domain.Point) error {
	if len(points) == 0 {
		fmt.Println("No points found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tDESTINATION\tFROM\tDURATION\tPRICE\tFAV\tOFFERS")
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t€%d\t%s\t%s\n",
			shortID(p.ID),
			p.Type,
			s.destinationName(p.DestinationID),
			p.DateFrom.Local().Format("2006-01-02 15:04"),
			formatDuration(p.Duration()),
			p.BasePrice,
			formatFavorite(p.IsFavorite),
			formatOffers(s, p),
		)
	}
	return w.Flush()
}

// shortID truncates server-assigned UUIDs for readability; commands accept
// the full id only.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDuration renders a duration the way the board does: "30M", "2H 15M",
// or "3D 4H" depending on magnitude.
func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dD %dH", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dH %dM", hours, minutes)
	default:
		return fmt.Sprintf("%dM", minutes)
	}
}

func formatFavorite(favorite bool) string {
	if favorite {
		return "★"
	}
	return "-"
}

func formatOffers(s *session, p domain.Point) string {
	selected := s.offers.Selected(p)
	if len(selected) == 0 {
		return "-"
	}
	titles := make([]string, 0, len(selected))
	for _, offer := range selected {
		titles = append(titles, fmt.Sprintf("%s (€%d)", offer.Title, offer.Price))
	}
	return strings.Join(titles, ", ")
}
