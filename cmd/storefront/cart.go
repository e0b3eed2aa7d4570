package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cartdomain "github.com/recirculate/storefront/internal/cart/domain"
)

func newCartCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and edit the cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cart lines and total",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			lines := a.cart.Lines()
			if len(lines) == 0 {
				fmt.Println("cart is empty")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
			for _, l := range lines {
				fmt.Fprintf(w, "%d\t%s\t$%.2f\t%d\t$%.2f\n",
					l.Product.IDKey, l.Product.Name, l.Product.Price, l.Quantity, l.Subtotal())
			}
			w.Flush()
			fmt.Printf("items: %d  total: $%.2f\n", a.cart.Count(), a.cart.Total())
			return nil
		},
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %q", args[0])
			}

			// Snapshot the product at add time; this price is what checkout
			// will bill, even if the backend price changes afterwards.
			p, err := a.catalog.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}

			ref := cartdomain.ProductRef{
				IDKey:      p.IDKey,
				Name:       p.Name,
				Price:      p.Price,
				CategoryID: p.CategoryID,
			}
			if err := a.cart.Add(ref, qty); err != nil {
				return err
			}

			fmt.Printf("added %d x %s ($%.2f)\n", qty, p.Name, p.Price)
			return nil
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity to add")

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product's line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %q", args[0])
			}
			get().cart.Remove(id)
			fmt.Println("removed")
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			get().cart.Clear()
			fmt.Println("cart cleared")
			return nil
		},
	}

	cmd.AddCommand(show, add, remove, clear)
	return cmd
}
