package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/smartstay/internal/hotelsearch"
)

// availability: ask whether one room is free for a stay.
func availabilityCmd(opts *options) *cobra.Command {
	var roomID, checkIn, checkOut string
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Check whether a room is free for a stay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := hotelsearch.ParseDate(checkIn, nil)
			if err != nil {
				return fmt.Errorf("--check-in: %w", err)
			}
			out, err := hotelsearch.ParseDate(checkOut, nil)
			if err != nil {
				return fmt.Errorf("--check-out: %w", err)
			}

			ok, err := opts.client.CheckAvailability(cmd.Context(), roomID, in, out)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "available")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "unavailable")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&roomID, "room", "", "room id")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")
	return cmd
}
