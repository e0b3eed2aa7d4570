package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	catalogdomain "github.com/recirculate/storefront/internal/catalog/domain"
)

func newAdminCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Catalog administration",
	}

	cmd.AddCommand(newAdminProductCmd(get), newAdminCategoryCmd(get))
	return cmd
}

func newAdminProductCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}

	var p catalogdomain.Product

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := get().catalog.CreateProduct(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Printf("product #%d created\n", created.IDKey)
			return nil
		},
	}
	create.Flags().StringVar(&p.Name, "name", "", "product name")
	create.Flags().Float64Var(&p.Price, "price", 0, "unit price")
	create.Flags().IntVar(&p.Stock, "stock", 0, "units in stock")
	create.Flags().IntVar(&p.CategoryID, "category", 0, "category id")
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("price")
	create.MarkFlagRequired("category")

	var u catalogdomain.Product
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %q", args[0])
			}
			u.IDKey = id

			updated, err := get().catalog.UpdateProduct(cmd.Context(), u)
			if err != nil {
				return err
			}
			fmt.Printf("product #%d updated\n", updated.IDKey)
			return nil
		},
	}
	update.Flags().StringVar(&u.Name, "name", "", "product name")
	update.Flags().Float64Var(&u.Price, "price", 0, "unit price")
	update.Flags().IntVar(&u.Stock, "stock", 0, "units in stock")
	update.Flags().IntVar(&u.CategoryID, "category", 0, "category id")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %q", args[0])
			}
			if err := get().catalog.DeleteProduct(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}

	cmd.AddCommand(create, update, del)
	return cmd
}

func newAdminCategoryCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	var name string

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := get().catalog.CreateCategory(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Printf("category #%d created\n", created.IDKey)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "category name")
	create.MarkFlagRequired("name")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("category id must be a number: %q", args[0])
			}
			updated, err := get().catalog.UpdateCategory(cmd.Context(), catalogdomain.Category{IDKey: id, Name: name})
			if err != nil {
				return err
			}
			fmt.Printf("category #%d updated\n", updated.IDKey)
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "category name")
	update.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("category id must be a number: %q", args[0])
			}
			if err := get().catalog.DeleteCategory(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}

	cmd.AddCommand(create, update, del)
	return cmd
}
