package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledkit/bledom/internal/protocol"
)

var powerCmd = &cobra.Command{
	Use:       "power on|off",
	Short:     "Turn the light on or off",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runPower,
}

func init() {
	rootCmd.AddCommand(powerCmd)
}

func runPower(cmd *cobra.Command, args []string) error {
	on := args[0] == "on"
	if !on && args[0] != "off" {
		return fmt.Errorf("expected \"on\" or \"off\", got %q", args[0])
	}

	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if on {
		err = s.dev.PowerOn()
		s.record("power-on", protocol.Power(true), err)
	} else {
		err = s.dev.PowerOff()
		s.record("power-off", protocol.Power(false), err)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Light is %s\n", args[0])
	return nil
}
