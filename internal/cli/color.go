package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledkit/bledom/internal/protocol"
)

var colorCmd = &cobra.Command{
	Use:   "color <hex|r g b>",
	Short: "Set a static color",
	Long: `Set a static RGB color.

Accepts either a hex color or three decimal components:

  bledomctl color ff8800
  bledomctl color "#ff8800"
  bledomctl color 255 136 0`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runColor,
}

func init() {
	rootCmd.AddCommand(colorCmd)
}

func runColor(cmd *cobra.Command, args []string) error {
	r, g, b, err := parseColor(args)
	if err != nil {
		return err
	}

	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	err = s.dev.SetColor(r, g, b)
	s.record("color", protocol.Color(r, g, b), err)
	if err != nil {
		return err
	}

	fmt.Printf("Color set to #%02X%02X%02X\n", r, g, b)
	return nil
}

func parseColor(args []string) (r, g, b uint8, err error) {
	if len(args) == 1 {
		hex := strings.TrimPrefix(strings.ToLower(args[0]), "#")
		if len(hex) != 6 {
			return 0, 0, 0, fmt.Errorf("hex color must be 6 digits, got %q", args[0])
		}
		v, perr := strconv.ParseUint(hex, 16, 32)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", args[0], perr)
		}
		return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
	}

	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("expected a hex color or 3 components, got %d arguments", len(args))
	}

	var parts [3]uint8
	for i, a := range args {
		v, perr := strconv.ParseUint(a, 10, 8)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("invalid color component %q: %w", a, perr)
		}
		parts[i] = uint8(v)
	}
	return parts[0], parts[1], parts[2], nil
}
