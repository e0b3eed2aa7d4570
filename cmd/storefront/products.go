package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProductsCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			products, err := a.catalog.ListProducts(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t$%.2f\t%d\n", p.IDKey, p.Name, p.Price, p.Stock)
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %q", args[0])
			}

			p, err := get().catalog.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("#%d %s\n", p.IDKey, p.Name)
			fmt.Printf("price: $%.2f\n", p.Price)
			fmt.Printf("stock: %d\n", p.Stock)
			if p.Category != nil {
				fmt.Printf("category: %s\n", p.Category.Name)
			}
			return nil
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := get().catalog.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Printf("%d\t%s\n", c.IDKey, c.Name)
			}
			return nil
		},
	}

	cmd.AddCommand(list, show, categories)
	return cmd
}
