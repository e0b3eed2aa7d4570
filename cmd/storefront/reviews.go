package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReviewsCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Product reviews",
	}

	var productID int

	list := &cobra.Command{
		Use:   "list",
		Short: "List reviews for a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := get().reviews.Refresh(cmd.Context(), productID)
			if err != nil {
				return err
			}
			if len(reviews) == 0 {
				fmt.Println("no reviews yet")
				return nil
			}
			for _, r := range reviews {
				fmt.Printf("#%d  %d/5  %s\n", r.IDKey, r.Rating, r.Comment)
			}
			return nil
		},
	}
	list.Flags().IntVar(&productID, "product", 0, "product id")
	list.MarkFlagRequired("product")

	var rating int
	var comment string
	add := &cobra.Command{
		Use:   "add",
		Short: "Review a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, ok := a.session.Current()
			if !ok {
				return errNotLoggedIn
			}

			created, err := a.reviews.Create(cmd.Context(), productID, id.ClientID, rating, comment)
			if err != nil {
				return err
			}
			fmt.Printf("review #%d posted\n", created.IDKey)
			return nil
		},
	}
	add.Flags().IntVar(&productID, "product", 0, "product id")
	add.Flags().IntVar(&rating, "rating", 5, "rating 1-5")
	add.Flags().StringVar(&comment, "comment", "", "review text")
	add.MarkFlagRequired("product")
	add.MarkFlagRequired("comment")

	cmd.AddCommand(list, add)
	return cmd
}
