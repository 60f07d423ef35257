package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledkit/bledom/internal/ble"
)

var scanSeconds int

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby BLE peripherals",
	Long:  `Scan for nearby BLE peripherals and show which look like ELK-BLEDOM controllers.`,
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanSeconds, "seconds", 5, "How long to scan")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	transport := ble.NewSystemTransport()

	adapters, err := transport.Adapters()
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}
	if len(adapters) == 0 {
		return fmt.Errorf("no Bluetooth adapters found")
	}
	adapter := adapters[0]

	fmt.Printf("Scanning for %ds...\n\n", scanSeconds)
	if err := adapter.StartScan(cmd.Context()); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	select {
	case <-time.After(time.Duration(scanSeconds) * time.Second):
	case <-cmd.Context().Done():
	}
	adapter.StopScan()

	peripherals, err := adapter.Peripherals()
	if err != nil {
		return fmt.Errorf("peripheral enumeration: %w", err)
	}

	found := 0
	for _, p := range peripherals {
		props, err := p.Properties()
		if err != nil {
			continue
		}
		name := props.LocalName
		if name == "" {
			name = "(no name)"
		}
		marker := "  "
		if strings.Contains(props.LocalName, "ELK-BLEDOM") {
			marker = "* "
			found++
		}
		fmt.Printf("%s%-24s %s  RSSI %d\n", marker, name, props.Address, props.RSSI)
	}

	fmt.Printf("\n%d peripheral(s), %d ELK-BLEDOM controller(s)\n", len(peripherals), found)
	return nil
}
