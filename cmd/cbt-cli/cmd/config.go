package cmd

import (
	"fmt"

	"github.com/nfrund/cbt/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect server configuration",
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load .env and the environment and report whether the server could start",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("configuration invalid: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "configuration OK")
		fmt.Fprintf(out, "  APP_ADDR           %s\n", cfg.GetAppAddr())
		fmt.Fprintf(out, "  APP_NAME           %s\n", cfg.GetAppName())
		fmt.Fprintf(out, "  SESSION_MAX_AGE    %d\n", cfg.GetSessionMaxAge())
		fmt.Fprintf(out, "  COOKIE_SECURE      %t\n", cfg.GetCookieSecure())
		fmt.Fprintf(out, "  STATIC_DIR         %s\n", orDefault(cfg.GetStaticDir(), "(embedded)"))
		fmt.Fprintf(out, "  EXTERNAL_BASE_URL  %s\n", orDefault(cfg.GetExternalBaseURL(), "(placeholders)"))
		fmt.Fprintf(out, "  NAV_BREAKPOINT_PX  %d\n", cfg.GetNavBreakpointPx())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(configCmd)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
