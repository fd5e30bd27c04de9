package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/core/config"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/inventory/deployments"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/inventory/items"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/seed"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the deployment catalog and what the seed inventory can cover.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			data, err := seed.Load(cfg.SeedFile)
			if err != nil {
				return fmt.Errorf("load seed data: %w", err)
			}

			resolver := deployments.NewResolver(
				deployments.NewCatalog(data.DeploymentCatalog),
				items.NewStore(data.Items, nil),
			)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ENTRY\tREQUIRED\tITEM\tIN STOCK")
			for _, a := range resolver.Availability() {
				item := a.ItemName
				if item == "" {
					item = "-"
				}
				required := ""
				if a.Entry.Required {
					required = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", a.Entry.Name, required, item, a.Count)
			}

			return w.Flush()
		},
	}
}
