package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_animator/internal/ble"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for GoCube devices",
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	_, results, err := scanForGoCube(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No GoCube devices found")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "%-20s %s  rssi %d\n", r.Name, r.ID(), r.RSSI)
	}
	return nil
}

// scanForGoCube performs one scan with the configured timeout.
func scanForGoCube(ctx context.Context) (*ble.Client, []ble.ScanResult, error) {
	fmt.Println("Scanning for GoCube devices...")

	client, err := ble.NewClient(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("BLE not available: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.BLE.ScanTimeout)
	defer cancel()

	results, err := client.Scan(ctx, cfg.BLE.ScanTimeout)
	if err != nil {
		return client, nil, err
	}
	return client, results, nil
}
