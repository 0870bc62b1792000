package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newOrderCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place orders and view past ones",
	}
	cmd.AddCommand(newOrderPlaceCmd(opts), newOrderHistoryCmd(opts))
	return cmd
}

func newOrderPlaceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "place",
		Short: "Submit the cart as an order",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			receipt, err := a.submitter.PlaceOrder(cmd.Context())
			if receipt != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Order placed. Bill No. %s\n", receipt.BillNo)
			}
			return err
		}),
	}
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return t, nil
}

func newOrderHistoryCmd(opts *options) *cobra.Command {
	var fromRaw, toRaw string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List your orders, by default for the last month",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			from, err := parseDate(fromRaw)
			if err != nil {
				return err
			}
			to, err := parseDate(toRaw)
			if err != nil {
				return err
			}

			orders, err := a.submitter.History(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders in this period.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BILL NO\tDATE\tSTATUS\tITEMS")
			for _, order := range orders {
				status := "Booked"
				if order.Delivered() {
					status = "Delivered"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", order.BillNo, order.Date.Format("02 Jan 2006"), status, len(order.Items))
			}
			return w.Flush()
		}),
	}

	cmd.Flags().StringVar(&fromRaw, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&toRaw, "to", "", "last day, YYYY-MM-DD")
	return cmd
}
