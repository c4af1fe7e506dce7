package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"ufl-rankings/internal/api"
	"ufl-rankings/internal/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultAddr = "http://localhost:8080"

var rootCmd = &cobra.Command{
	Use:           "rankctl",
	Short:         "Admin client for the UFL ranking server",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("addr", "", "Server address (overrides RANKCTL_ADDR env var)")
	rootCmd.PersistentFlags().String("secret", "", "Admin secret (overrides ADMIN_SECRET env var)")
	rootCmd.PersistentFlags().Bool("json", false, "Print raw JSON responses")

	rootCmd.AddCommand(fighterCmd)
	rootCmd.AddCommand(fightCmd)
	rootCmd.AddCommand(championCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(recomputeCmd)
}

// resolve returns the flag value, then the env var, then def.
func resolve(cmd *cobra.Command, flag, env, def string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func newClient(cmd *cobra.Command) *api.Client {
	return api.NewClient(
		resolve(cmd, "addr", "RANKCTL_ADDR", defaultAddr),
		resolve(cmd, "secret", "ADMIN_SECRET", ""),
	)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), constants.ClientTimeout)
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
