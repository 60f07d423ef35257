package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledkit/bledom"
	"github.com/ledkit/bledom/internal/protocol"
)

var (
	scheduleDays    string
	scheduleAt      string
	scheduleDisable bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule on|off",
	Short: "Program the daily on/off schedule",
	Long: `Program the controller's power-on or power-off schedule.

Examples:

  bledomctl schedule on  --days weekdays --at 07:30
  bledomctl schedule off --days all --at 23:00
  bledomctl schedule on  --days mon,wed,fri --at 18:00 --disable

--disable stores the entry without activating it.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleDays, "days", "all", "Days the schedule applies to (mon,tue,... or all/weekdays/weekend)")
	scheduleCmd.Flags().StringVar(&scheduleAt, "at", "", "Time of day, HH:MM (required)")
	scheduleCmd.Flags().BoolVar(&scheduleDisable, "disable", false, "Store the schedule entry without activating it")
	scheduleCmd.MarkFlagRequired("at")
	rootCmd.AddCommand(scheduleCmd)
}

func parseClock(s string) (hour, minute uint8, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time must be HH:MM, got %q", s)
	}
	h, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	return uint8(h), uint8(m), nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if args[0] != "on" && args[0] != "off" {
		return fmt.Errorf("expected \"on\" or \"off\", got %q", args[0])
	}

	days, err := bledom.ParseDays(scheduleDays)
	if err != nil {
		return err
	}
	hour, minute, err := parseClock(scheduleAt)
	if err != nil {
		return err
	}
	enabled := !scheduleDisable

	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if args[0] == "on" {
		err = s.dev.SetScheduleOn(days, hour, minute, enabled)
		if err == nil {
			if frame, ferr := protocol.ScheduleOn(byte(days), hour, minute, enabled); ferr == nil {
				s.record("schedule-on", frame, nil)
			}
		}
	} else {
		err = s.dev.SetScheduleOff(days, hour, minute, enabled)
		if err == nil {
			if frame, ferr := protocol.ScheduleOff(byte(days), hour, minute, enabled); ferr == nil {
				s.record("schedule-off", frame, nil)
			}
		}
	}
	if err != nil {
		return err
	}

	state := "enabled"
	if !enabled {
		state = "stored (disabled)"
	}
	fmt.Printf("Schedule %s at %02d:%02d on %s: %s\n", args[0], hour, minute, days, state)
	return nil
}
