package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledkit/bledom/internal/storage"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recently sent commands",
	Long:  `Show the most recent frames sent to a controller, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "Maximum entries to show")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open command log: %w", err)
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		return err
	}

	commands, err := storage.NewCommandRepository(db).ListRecent(logLimit)
	if err != nil {
		return err
	}

	if len(commands) == 0 {
		fmt.Println("No commands recorded yet.")
		return nil
	}

	for _, c := range commands {
		frame, _ := c.Frame()
		fmt.Printf("%s  %-14s %-20s % X\n",
			c.SentAt.Local().Format("2006-01-02 15:04:05"),
			c.Operation, c.DeviceName, frame)
	}
	return nil
}
