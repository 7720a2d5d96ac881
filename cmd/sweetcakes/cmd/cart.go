package cmd

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wexinc/sweetcakes/internal/cart"
	apperrors "github.com/wexinc/sweetcakes/internal/errors"
)

func newCartCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cart",
		Short: "Show the shopping cart",
		Long: `Show the shopping cart with its order summary.

The cart is saved after every change, so it survives restarts.

Examples:
  sweetcakes cart              # Show the cart
  sweetcakes cart add 1 3      # Add cakes by product ID
  sweetcakes cart set 1 4      # Set a quantity (0 removes)
  sweetcakes cart remove 1     # Remove a cake
  sweetcakes cart clear        # Empty the cart
  sweetcakes cart reset        # Delete the stored cart value`,
		Args: cobra.NoArgs,
		RunE: runCartShow,
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "add <product-id>...",
			Short: "Add cakes to the cart",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runCartAdd,
		},
		&cobra.Command{
			Use:     "remove <product-id>",
			Aliases: []string{"rm"},
			Short:   "Remove a cake from the cart",
			Args:    cobra.ExactArgs(1),
			RunE:    runCartRemove,
		},
		&cobra.Command{
			Use:   "set <product-id> <quantity>",
			Short: "Set the quantity of a cake in the cart",
			Args:  cobra.ExactArgs(2),
			RunE:  runCartSet,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every cake from the cart",
			Args:  cobra.NoArgs,
			RunE:  runCartClear,
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Delete the stored cart, including an unreadable one",
			Args:  cobra.NoArgs,
			RunE:  runCartReset,
		},
		&cobra.Command{
			Use:   "total",
			Short: "Print the cart total",
			Args:  cobra.NoArgs,
			RunE:  runCartTotal,
		},
	)
	return c
}

// withCart opens the app with a cart store, runs fn and closes the app.
func withCart(cmd *cobra.Command, printToasts bool, fn func(a *app) error) error {
	a, err := openApp(cmd, appOptions{withCart: true, printToasts: printToasts})
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func runCartShow(cmd *cobra.Command, args []string) error {
	return withCart(cmd, false, func(a *app) error {
		printCart(cmd, a)
		return nil
	})
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	return withCart(cmd, true, func(a *app) error {
		// Resolve every ID first so a typo adds nothing.
		items := make([]cart.Item, 0, len(args))
		for _, id := range args {
			p, err := a.catalog.Lookup(id)
			if err != nil {
				return err
			}
			items = append(items, p.CartItem())
		}
		for _, item := range items {
			if err := a.store.AddItem(item); err != nil {
				return err
			}
		}
		cmd.Printf("Cart: %d item(s), total %s\n", a.store.Count(), a.money(a.store.Total()))
		return nil
	})
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	return withCart(cmd, true, func(a *app) error {
		id := args[0]
		if _, ok := a.store.Get(id); !ok {
			cmd.Printf("%s is not in the cart.\n", id)
			return nil
		}
		return a.store.RemoveItem(id)
	})
}

func runCartSet(cmd *cobra.Command, args []string) error {
	id := args[0]
	qty, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return apperrors.InvalidQuantity(args[1])
	}

	return withCart(cmd, true, func(a *app) error {
		if _, ok := a.store.Get(id); !ok {
			cmd.Printf("%s is not in the cart.\n", id)
			return nil
		}
		if err := a.store.UpdateQuantity(id, qty); err != nil {
			return err
		}
		li, ok := a.store.Get(id)
		if !ok {
			return nil
		}
		subtotal, _ := a.store.Subtotal(id)
		cmd.Printf("%s quantity set to %d (subtotal %s)\n", li.Name, li.Quantity, a.money(subtotal))
		return nil
	})
}

func runCartClear(cmd *cobra.Command, args []string) error {
	return withCart(cmd, true, func(a *app) error {
		return a.store.ClearCart()
	})
}

// runCartReset removes the cart key from storage. Unlike clear it writes
// nothing and sends no notification.
func runCartReset(cmd *cobra.Command, args []string) error {
	return withCart(cmd, false, func(a *app) error {
		key := a.cfg.Storage.Key
		if err := a.kv.Delete(key); err != nil {
			return apperrors.StorageUnavailable(a.cfg.Storage.Driver.String(), a.cfg.StoragePath(), err)
		}
		a.logger.Info("stored cart deleted", "key", key)
		cmd.Printf("Stored cart %q deleted.\n", key)
		return nil
	})
}

func runCartTotal(cmd *cobra.Command, args []string) error {
	return withCart(cmd, false, func(a *app) error {
		cmd.Println(a.money(a.store.Total()))
		return nil
	})
}

// printCart writes the cart lines and the order summary.
func printCart(cmd *cobra.Command, a *app) {
	items := a.store.Items()
	if len(items) == 0 {
		cmd.Println("Your cart is empty")
		return
	}

	rows := make([][]string, 0, len(items))
	for _, li := range items {
		rows = append(rows, []string{
			li.ID,
			li.Name,
			strconv.Itoa(li.Quantity),
			a.money(li.UnitPrice()),
			a.money(li.Subtotal()),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "QTY", "PRICE", "SUBTOTAL").
		Rows(rows...)
	cmd.Println(strings.TrimRight(t.String(), "\n"))

	s := cart.Summarize(items, a.cfg.Shop.DeliveryFee)
	delivery := "Free"
	if !s.FreeDelivery() {
		delivery = a.money(s.Delivery)
	}
	cmd.Printf("Subtotal: %s\n", a.money(s.Subtotal))
	cmd.Printf("Delivery: %s\n", delivery)
	cmd.Printf("Total:    %s\n", a.money(s.Total))
}
