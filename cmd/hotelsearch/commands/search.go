package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/smartstay/internal/ui"
)

// search: run one hotel search and print the JSON result.
func searchCmd(opts *options) *cobra.Command {
	var form ui.SearchForm
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search hotels in a destination for a stay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := ui.NewPage(opts.client).Search(cmd.Context(), form)
			if n := view.Notification; n != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", n.Type, n.Message)
				return errors.New(n.Message)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view.Result.Value)
		},
	}
	today := time.Now().Format(time.DateOnly)
	cmd.Flags().StringVarP(&form.Destination, "destination", "d", "", "city to search")
	cmd.Flags().StringVar(&form.CheckIn, "check-in", today, "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.CheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("check-out")
	return cmd
}
