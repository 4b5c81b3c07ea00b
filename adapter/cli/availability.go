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
	availFrom string
	availTo   string
)

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Compute availability intervals for a window",
	Long: `Compute the concrete availability intervals of the schedule document
over a query window.

Examples:
  freebusy availability --from 2024-03-04 --to 2024-03-08 --zone America/New_York
  freebusy availability --from 2024-03-04T00:00:00Z --to 2024-03-08T00:00:00Z`,
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

		from, err := parseInstant(availFrom, loc)
		if err != nil {
			return err
		}
		to, err := parseInstant(availTo, loc)
		if err != nil {
			return err
		}

		repo := persistence.NewMemoryScheduleRepository()
		if err := repo.Save(cmd.Context(), schedule); err != nil {
			return err
		}

		handler := queries.NewGetAvailabilityHandler(repo)
		intervals, err := handler.Handle(cmd.Context(), queries.GetAvailabilityQuery{
			ResourceID: schedule.ResourceID(),
			From:       from,
			To:         to,
			TimeZone:   zone,
		})
		if err != nil {
			return fmt.Errorf("compute availability: %w", err)
		}

		printIntervals(fmt.Sprintf("Availability in %s", zone), intervals)
		return nil
	},
}

func printIntervals(title string, intervals []queries.IntervalDTO) {
	fmt.Println(title)
	fmt.Println(strings.Repeat("-", 50))

	if len(intervals) == 0 {
		fmt.Println("\n  No intervals.")
		return
	}

	total := 0
	for _, iv := range intervals {
		fmt.Printf("\n  %s - %s  (%d min)\n",
			iv.Start.Format("Mon 2006-01-02 15:04 MST"),
			iv.End.Format("Mon 2006-01-02 15:04 MST"),
			iv.DurationMin,
		)
		total += iv.DurationMin
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Total: %d intervals, %d minutes\n", len(intervals), total)
}

func init() {
	availabilityCmd.Flags().StringVar(&availFrom, "from", "", "window start (RFC 3339 or YYYY-MM-DD)")
	availabilityCmd.Flags().StringVar(&availTo, "to", "", "window end (RFC 3339 or YYYY-MM-DD)")
	_ = availabilityCmd.MarkFlagRequired("from")
	_ = availabilityCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(availabilityCmd)
}
