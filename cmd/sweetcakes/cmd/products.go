package cmd

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/catalog"
	apperrors "github.com/wexinc/sweetcakes/internal/errors"
)

func newProductsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "products",
		Aliases: []string{"ls"},
		Short:   "List the cakes in the catalog",
		Long: `List the cakes in the catalog.

Products can be filtered by category or limited to featured cakes.
Use the product ID with 'sweetcakes cart add'.

Examples:
  sweetcakes products                        # All cakes
  sweetcakes products --featured             # Featured cakes only
  sweetcakes products --category "Fruit Cakes"`,
		Args: cobra.NoArgs,
		RunE: runProducts,
	}
	c.Flags().StringP("category", "c", "", "Only show products in this category")
	c.Flags().Bool("featured", false, "Only show featured products")
	return c
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the product categories",
		Args:  cobra.NoArgs,
		RunE:  runCategories,
	}
}

func runProducts(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	featured, _ := cmd.Flags().GetBool("featured")

	a, err := openApp(cmd, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	if category != "" && !a.catalog.HasCategory(category) {
		return apperrors.WithSuggestion(apperrors.ErrNotFound,
			"unknown category: "+category,
			"List categories with: sweetcakes categories").
			WithDetails("category", category)
	}

	products := a.catalog.ByCategory(category)
	if featured {
		products = onlyFeatured(products)
	}
	if len(products) == 0 {
		cmd.Println("No products found.")
		return nil
	}

	cmd.Println(productTable(products, a.cfg.Shop.Currency))
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	for _, c := range a.catalog.Categories() {
		n := len(a.catalog.ByCategory(c))
		cmd.Printf("%s (%d)\n", c, n)
	}
	return nil
}

func onlyFeatured(products []catalog.Product) []catalog.Product {
	var out []catalog.Product
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func productTable(products []catalog.Product, currency string) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		name := p.Name
		if p.Featured {
			name += " ★"
		}
		rows = append(rows, []string{
			p.ID,
			name,
			p.Category,
			cart.FormatMoney(currency, p.PriceDecimal()),
			strconv.FormatFloat(p.Rating, 'f', 1, 64),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "CATEGORY", "PRICE", "RATING").
		Rows(rows...)
	return strings.TrimRight(t.String(), "\n")
}
