package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Rajchodisetti/theme-engine/internal/product"
)

func newPlanCmd() *cobra.Command {
	var productName string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the monitor plan (theme/constraint/asset bindings) for a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorld(false)
			if err != nil {
				return err
			}
			plan, err := product.BuildMonitorPlan(w.registry, w.assets, productName)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "THEME\tCONSTRAINT\tASSETS")
			for _, item := range plan.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Theme, item.ConstraintID, strings.Join(item.Assets, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&productName, "product", "", "product name")
	cmd.MarkFlagRequired("product")
	return cmd
}
