package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shadecart/shadecart/cart"
)

func newCartCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the cart",
	}
	cmd.AddCommand(
		newCartListCmd(opts),
		newCartAddCmd(opts),
		newCartRemoveCmd(opts),
		newCartUpdateCmd(opts),
		newCartClearCmd(opts),
	)
	return cmd
}

func printCart(cmd *cobra.Command, items []cart.LineItem) error {
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Your cart is empty.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tCOLOR\tHEX\tQTY")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", item.Category, item.ColorName, item.ColorHex, item.Quantity)
	}
	return w.Flush()
}

func newCartListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			return printCart(cmd, a.cart.Snapshot())
		}),
	}
}

func newCartAddCmd(opts *options) *cobra.Command {
	item := cart.LineItem{Quantity: 1}

	cmd := &cobra.Command{
		Use:   "add CATEGORY HEX",
		Short: "Put a shade in the cart, replacing any existing quantity",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			item.Category, item.ColorHex = args[0], args[1]
			if err := a.cart.Add(cmd.Context(), item); err != nil {
				return err
			}
			return printCart(cmd, a.cart.Snapshot())
		}),
	}

	flags := cmd.Flags()
	flags.IntVarP(&item.Quantity, "quantity", "q", 1, "number of units")
	flags.StringVar(&item.ColorName, "name", "", "shade name")
	flags.StringVar(&item.ColorID, "id", "", "shade id from the catalog")
	return cmd
}

func newCartRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CATEGORY HEX",
		Short: "Take a shade out of the cart",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.cart.Remove(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			return printCart(cmd, a.cart.Snapshot())
		}),
	}
}

func newCartUpdateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "update CATEGORY HEX QUANTITY",
		Short: "Change the quantity of a shade; anything below 1 removes it",
		Args:  cobra.ExactArgs(3),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.cart.UpdateQuantityString(cmd.Context(), args[0], args[1], args[2]); err != nil {
				return err
			}
			return printCart(cmd, a.cart.Snapshot())
		}),
	}
}

func newCartClearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.cart.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared.")
			return nil
		}),
	}
}
