package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Srialok01/healthcheck/internal/config"
)

var siteListCmd = &cobra.Command{
	Use:   "site:list",
	Short: "List all saved sites",
	Long:  `Display all sites currently saved in the healthcheck configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if len(cfg.Sites) == 0 {
			fmt.Println("No sites saved yet.")
			fmt.Println("\nAdd a site with:")
			fmt.Println("  healthcheck site:add --name <name> --url <url>")
			return nil
		}

		fmt.Printf("Saved sites (%d):\n\n", len(cfg.Sites))

		for _, site := range cfg.Sites {
			fmt.Printf("  • %s\n", site.Name)
			fmt.Printf("    URL: %s\n\n", site.URL)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(siteListCmd)
}
