package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledkit/bledom"
	"github.com/ledkit/bledom/internal/protocol"
)

var effectCmd = &cobra.Command{
	Use:   "effect",
	Short: "Control built-in lighting effects",
}

var effectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in effects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, e := range bledom.AllEffects() {
			fmt.Printf("  0x%02X  %s\n", byte(e), e)
		}
		return nil
	},
}

var effectSetCmd = &cobra.Command{
	Use:   "set <name|code>",
	Short: "Select a built-in effect",
	Long: `Select a built-in effect by name or raw code:

  bledomctl effect set crossfade-rainbow
  bledomctl effect set 0x8a`,
	Args: cobra.ExactArgs(1),
	RunE: runEffectSet,
}

var effectSpeedCmd = &cobra.Command{
	Use:   "speed <0-100>",
	Short: "Set the effect animation speed",
	Args:  cobra.ExactArgs(1),
	RunE:  runEffectSpeed,
}

func init() {
	effectCmd.AddCommand(effectListCmd)
	effectCmd.AddCommand(effectSetCmd)
	effectCmd.AddCommand(effectSpeedCmd)
	effectCmd.AddCommand(effectBrowseCmd)
	rootCmd.AddCommand(effectCmd)
}

func parseEffect(arg string) (bledom.Effect, error) {
	if e, ok := bledom.EffectByName(strings.ToLower(arg)); ok {
		return e, nil
	}
	if v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(arg), "0x"), 16, 8); err == nil {
		return bledom.Effect(v), nil
	}
	return 0, fmt.Errorf("unknown effect %q (try \"bledomctl effect list\")", arg)
}

func runEffectSet(cmd *cobra.Command, args []string) error {
	effect, err := parseEffect(args[0])
	if err != nil {
		return err
	}

	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	err = s.dev.SetEffect(effect)
	s.record("effect", protocol.Effect(byte(effect)), err)
	if err != nil {
		return err
	}

	fmt.Printf("Effect set to %s\n", effect)
	return nil
}

func runEffectSpeed(cmd *cobra.Command, args []string) error {
	speed, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid speed %q: %w", args[0], err)
	}

	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.dev.SetEffectSpeed(uint8(speed)); err != nil {
		return err
	}
	if frame, ferr := protocol.EffectSpeed(uint8(speed)); ferr == nil {
		s.record("effect-speed", frame, nil)
	}

	fmt.Printf("Effect speed set to %d%%\n", speed)
	return nil
}
