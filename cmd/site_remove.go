package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Srialok01/healthcheck/internal/config"
)

var (
	forceRemove bool
)

var siteRemoveCmd = &cobra.Command{
	Use:   "site:remove <name>",
	Short: "Remove a saved site",
	Long: `Remove a site by name from the healthcheck configuration.

Example:
  healthcheck site:remove prod
  healthcheck site:remove blog --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Confirm removal unless --force is used
		if !forceRemove {
			fmt.Printf("Remove site '%s'? (y/N): ", name)
			reader := bufio.NewReader(os.Stdin)
			response, err := reader.ReadString('\n')
			if err != nil {
				return err
			}

			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := cfg.RemoveSite(name); err != nil {
			return err
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Printf("✓ Removed site '%s'\n", name)

		return nil
	},
}

func init() {
	siteRemoveCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "skip confirmation prompt")
	rootCmd.AddCommand(siteRemoveCmd)
}
