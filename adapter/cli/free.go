package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/freebusy/internal/availability/application/queries"
	"github.com/felixgeelhaar/freebusy/internal/availability/infrastructure/persistence"
	"github.com/spf13/cobra"
)

var (
	freeFrom string
	freeTo   string
	freeBusy []string
)

var freeCmd = &cobra.Command{
	Use:   "free",
	Short: "Compute free intervals after removing busy time",
	Long: `Compute availability and carve out busy intervals such as existing
bookings. Busy intervals may be given in any order and may overlap.

Examples:
  freebusy free --from 2024-03-04 --to 2024-03-08 \
    --busy 2024-03-04T14:00:00Z/2024-03-04T15:00:00Z \
    --busy 2024-03-05T09:30:00Z/2024-03-05T10:00:00Z`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := loadSchedule(effectiveSchedulePath())
		if err != nil {
			return err
		}

		zone := effectiveZone()
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return fmt.Errorf("load time zone %q: %w", zone, err)
		}

		from, err := parseInstant(freeFrom, loc)
		if err != nil {
			return err
		}
		to, err := parseInstant(freeTo, loc)
		if err != nil {
			return err
		}

		busy, err := parseBusy(freeBusy, loc)
		if err != nil {
			return err
		}

		repo := persistence.NewMemoryScheduleRepository()
		if err := repo.Save(cmd.Context(), schedule); err != nil {
			return err
		}

		handler := queries.NewFindFreeIntervalsHandler(repo)
		intervals, err := handler.Handle(cmd.Context(), queries.FindFreeIntervalsQuery{
			ResourceID: schedule.ResourceID(),
			From:       from,
			To:         to,
			TimeZone:   zone,
			Busy:       busy,
		})
		if err != nil {
			return fmt.Errorf("compute free intervals: %w", err)
		}

		printIntervals(fmt.Sprintf("Free intervals in %s", zone), intervals)
		return nil
	},
}

// parseBusy decodes "start/end" pairs.
func parseBusy(specs []string, loc *time.Location) ([]queries.BusyInterval, error) {
	busy := make([]queries.BusyInterval, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, "/", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid busy interval %q, use start/end", spec)
		}
		start, err := parseInstant(parts[0], loc)
		if err != nil {
			return nil, fmt.Errorf("busy interval %q: %w", spec, err)
		}
		end, err := parseInstant(parts[1], loc)
		if err != nil {
			return nil, fmt.Errorf("busy interval %q: %w", spec, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("busy interval %q ends before it starts", spec)
		}
		busy = append(busy, queries.BusyInterval{Start: start, End: end})
	}
	return busy, nil
}

func init() {
	freeCmd.Flags().StringVar(&freeFrom, "from", "", "window start (RFC 3339 or YYYY-MM-DD)")
	freeCmd.Flags().StringVar(&freeTo, "to", "", "window end (RFC 3339 or YYYY-MM-DD)")
	freeCmd.Flags().StringArrayVar(&freeBusy, "busy", nil, "busy interval start/end (repeatable)")
	_ = freeCmd.MarkFlagRequired("from")
	_ = freeCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(freeCmd)
}
