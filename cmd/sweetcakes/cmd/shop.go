package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/sweetcakes/internal/tui"
)

func newShopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive storefront",
		Long: `Open the interactive storefront.

Browse the catalog on the left and manage the cart on the right.
Cart changes are saved immediately and shown as notifications.

Keys:
  tab        switch between catalog and cart
  enter, a   add the selected cake
  +/-        change quantity (cart)
  d          remove from cart
  C          clear the cart
  f / F      next category / featured only
  ?          full help
  q          quit`,
		Args: cobra.NoArgs,
		RunE: runShop,
	}
}

func runShop(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, appOptions{withCart: true})
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("shop started", "products", a.catalog.Len(), "items", a.store.Len())
	err = tui.Run(cmd.Context(), a.store, a.catalog, tui.Options{
		Currency:    a.cfg.Shop.Currency,
		DeliveryFee: a.cfg.Shop.DeliveryFee,
		StorageName: a.cfg.Storage.Driver.String(),
	})
	a.logger.Info("shop closed", "items", a.store.Len(), "total", a.store.Total().StringFixed(2))
	return err
}
