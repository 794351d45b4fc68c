package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Srialok01/healthcheck/internal/config"
	"github.com/Srialok01/healthcheck/internal/probe"
)

var (
	siteName string
	siteURL  string
)

var siteAddCmd = &cobra.Command{
	Use:   "site:add",
	Short: "Save a site to check by default",
	Long: `Save a site to your healthcheck configuration. Saved sites are probed
when healthcheck runs with no URL arguments.

Examples:
  healthcheck site:add --name prod --url https://api.example.com
  healthcheck site:add --name blog --url http://blog.example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := probe.ValidateURL(siteURL); err != nil {
			return fmt.Errorf("invalid site URL: %w", err)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'healthcheck init' first)", err)
		}

		if err := cfg.AddSite(config.Site{Name: siteName, URL: siteURL}); err != nil {
			return err
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		configPath, _ := config.GetConfigPath()
		fmt.Printf("✓ Added site '%s' to %s\n", siteName, configPath)

		return nil
	},
}

func init() {
	siteAddCmd.Flags().StringVarP(&siteName, "name", "n", "", "site name (required)")
	siteAddCmd.Flags().StringVarP(&siteURL, "url", "u", "", "site URL (required)")

	siteAddCmd.MarkFlagRequired("name")
	siteAddCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(siteAddCmd)
}
