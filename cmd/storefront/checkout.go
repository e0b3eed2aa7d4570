package main

import (
	"fmt"

	"github.com/spf13/cobra"

	checkoutdomain "github.com/recirculate/storefront/internal/checkout/domain"
	orderdomain "github.com/recirculate/storefront/internal/order/domain"
)

func newCheckoutCmd(get func() *app) *cobra.Command {
	var input checkoutdomain.Input

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place the order for the current cart",
		Long: "Creates the shipping address, the bill and the order, then one order line " +
			"per cart line. If anything fails the cart is kept so the attempt can be retried.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()

			if !orderdomain.PaymentType(input.PaymentType).Valid() {
				return fmt.Errorf("payment must be 1 (cash), 2 (card), 3 (debit), 4 (credit) or 5 (transfer), got %d", input.PaymentType)
			}

			conf, err := a.checkout.Place(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("order #%d placed, bill #%d, total $%.2f\n", conf.OrderID, conf.BillID, conf.Total)
			fmt.Println("see it with 'storefront orders list'")
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Street, "street", "", "shipping street")
	cmd.Flags().StringVar(&input.Number, "number", "", "street number")
	cmd.Flags().StringVar(&input.City, "city", "", "city")
	cmd.Flags().IntVar(&input.PaymentType, "payment", 1, "payment type 1-5")
	cmd.MarkFlagRequired("street")
	cmd.MarkFlagRequired("number")
	cmd.MarkFlagRequired("city")

	return cmd
}
