package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledkit/bledom/internal/protocol"
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Manage the controller's clock",
}

var timeSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Set the controller's clock to the local time",
	Args:  cobra.NoArgs,
	RunE:  runTimeSync,
}

var timeSetCmd = &cobra.Command{
	Use:   "set <HH:MM:SS> <1-7>",
	Short: "Set the controller's clock to an arbitrary time",
	Long:  `Set the clock to an arbitrary time. The day of week is ISO: 1=Monday, 7=Sunday.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runTimeSet,
}

func init() {
	timeCmd.AddCommand(timeSyncCmd)
	timeCmd.AddCommand(timeSetCmd)
	rootCmd.AddCommand(timeCmd)
}

func runTimeSync(cmd *cobra.Command, args []string) error {
	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.dev.SyncTime(); err != nil {
		return err
	}

	now := time.Now()
	weekday := uint8(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	if frame, ferr := protocol.CustomTime(uint8(now.Hour()), uint8(now.Minute()), uint8(now.Second()), weekday); ferr == nil {
		s.record("time-sync", frame, nil)
	}

	fmt.Printf("Clock synced to %s\n", now.Format("15:04:05 Mon"))
	return nil
}

func runTimeSet(cmd *cobra.Command, args []string) error {
	parts := strings.Split(args[0], ":")
	if len(parts) != 3 {
		return fmt.Errorf("time must be HH:MM:SS, got %q", args[0])
	}

	var hms [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return fmt.Errorf("invalid time %q: %w", args[0], err)
		}
		hms[i] = uint8(v)
	}

	weekday, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid day of week %q: %w", args[1], err)
	}

	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.dev.SetCustomTime(hms[0], hms[1], hms[2], uint8(weekday)); err != nil {
		return err
	}
	if frame, ferr := protocol.CustomTime(hms[0], hms[1], hms[2], uint8(weekday)); ferr == nil {
		s.record("time-set", frame, nil)
	}

	fmt.Printf("Clock set to %02d:%02d:%02d (day %d)\n", hms[0], hms[1], hms[2], weekday)
	return nil
}
