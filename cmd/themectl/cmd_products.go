package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List configured products",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorld(false)
			if err != nil {
				return err
			}
			for _, name := range w.registry.Products() {
				meta := w.registry.Meta(name)
				if meta.Name != "" {
					fmt.Printf("%s\t%s\n", name, meta.Name)
					continue
				}
				fmt.Println(name)
			}
			return nil
		},
	}
}
