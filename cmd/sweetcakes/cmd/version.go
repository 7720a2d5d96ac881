package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/sweetcakes/internal/version"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for sweetcakes.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  sweetcakes version          # Show detailed version info
  sweetcakes version --json   # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().Bool("json", false, "Print version information as JSON")
	return c
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := info.JSON()
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	}

	cmd.Println(info.FullString())
	return nil
}
