package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("log in first ('storefront login')")

func newOrdersCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Order history",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, ok := a.session.Current()
			if !ok {
				return errNotLoggedIn
			}

			orders, err := a.orders.ListByClient(cmd.Context(), id.ClientID)
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Println("no orders yet")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTOTAL\tSTATUS")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t$%.2f\t%s\n", o.IDKey, o.Date, o.Total, o.Status)
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order with its bill and lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("order id must be a number: %q", args[0])
			}

			order, err := a.orders.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("order #%d  %s  $%.2f  %s\n", order.IDKey, order.Date, order.Total, order.Status)

			if bill, err := a.orders.BillFor(cmd.Context(), order); err == nil {
				fmt.Printf("bill %s (%s)\n", bill.BillNumber, bill.Date)
			}

			lines, err := a.orders.LinesFor(cmd.Context(), order.IDKey)
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Printf("  product %d x %d\n", l.ProductID, l.Quantity)
			}
			return nil
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("order id must be a number: %q", args[0])
			}

			order, err := a.orders.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			updated, err := a.orders.Cancel(cmd.Context(), order)
			if err != nil {
				return err
			}

			fmt.Printf("order #%d is now %s\n", updated.IDKey, updated.Status)
			return nil
		},
	}

	cmd.AddCommand(list, show, cancel)
	return cmd
}
