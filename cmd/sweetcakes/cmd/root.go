// Package cmd provides the CLI commands for sweetcakes.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/wexinc/sweetcakes/internal/errors"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sweetcakes",
		Short: "Sweet Cakes - a bakery storefront in your terminal",
		Long: `Sweet Cakes is a bakery storefront for the terminal.

Browse the cake catalog, keep a shopping cart that survives restarts,
and watch the order summary update as you shop. The cart is stored
locally in .sweetcakes/ (file or SQLite storage).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Config file (default .sweetcakes/config.yaml)")
	return root
}

func addCommands(root *cobra.Command) {
	root.AddCommand(
		newInitCmd(),
		newProductsCmd(),
		newCategoriesCmd(),
		newCartCmd(),
		newShopCmd(),
		newVersionCmd(),
	)
}

func init() {
	addCommands(rootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("sweetcakes {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, apperrors.Format(err))
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
