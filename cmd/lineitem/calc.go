package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/lineitem/internal/invoice"
)

func newCalcCmd() *cobra.Command {
	var form invoice.FormState

	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "Derive discount, tax and total for one line without the UI",
		Example: `  lineitem calc --qty 2 --price 50 --discount 10 --tax 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form = invoice.Derive(form)
			b := invoice.Compute(form)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Subtotal:\t%s\n", invoice.FormatAmount(b.Subtotal))
			fmt.Fprintf(w, "Discount:\t%s\n", form.DiscountAmount)
			fmt.Fprintf(w, "After discount:\t%s\n", invoice.FormatAmount(b.AfterDiscount))
			fmt.Fprintf(w, "Tax:\t%s\n", form.TaxAmount)
			fmt.Fprintf(w, "Total:\t%s\n", form.TotalPrice)
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&form.Quantity, "qty", "", "quantity")
	cmd.Flags().StringVar(&form.UnitPrice, "price", "", "unit price")
	cmd.Flags().StringVar(&form.DiscountPercentage, "discount", "", "discount percentage")
	cmd.Flags().StringVar(&form.TaxPercentage, "tax", "", "tax percentage")
	return cmd
}
