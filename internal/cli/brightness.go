package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledkit/bledom/internal/protocol"
)

var brightnessCmd = &cobra.Command{
	Use:   "brightness <0-100>",
	Short: "Set the brightness percentage",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrightness,
}

func init() {
	rootCmd.AddCommand(brightnessCmd)
}

func runBrightness(cmd *cobra.Command, args []string) error {
	level, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid brightness %q: %w", args[0], err)
	}

	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	err = s.dev.SetBrightness(uint8(level))
	if err != nil {
		return err
	}
	if frame, ferr := protocol.Brightness(uint8(level)); ferr == nil {
		s.record("brightness", frame, nil)
	}

	fmt.Printf("Brightness set to %d%%\n", level)
	return nil
}
