package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Srialok01/healthcheck/internal/config"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize healthcheck configuration",
	Long: `Create a new configuration file at ~/.config/healthcheck/config.yml
with sensible defaults. Edit this file to save your sites.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(forceInit); err != nil {
			return err
		}

		configPath, _ := config.GetConfigPath()

		if forceInit {
			fmt.Printf("✓ Configuration reset at %s\n", configPath)
		} else {
			fmt.Printf("✓ Configuration initialized at %s\n", configPath)
		}

		fmt.Println("\nEdit the config file to save your sites, then run:")
		fmt.Println("  healthcheck")

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}
