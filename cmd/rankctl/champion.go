package main

import (
	"github.com/spf13/cobra"
)

var championCmd = &cobra.Command{
	Use:   "champion",
	Short: "Manage the champion registry",
}

var championSetCmd = &cobra.Command{
	Use:   "set <platform> <name>",
	Short: "Crown a fighter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).SetChampion(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var championClearCmd = &cobra.Command{
	Use:   "clear <platform>",
	Short: "Vacate a platform's title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).SetChampion(ctx, args[0], "")
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var rankingCmd = &cobra.Command{
	Use:   "ranking <platform>",
	Short: "Show the champion and top contenders of a platform",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).GetRanking(ctx, args[0])
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), res)
		}
		return printRanking(cmd.OutOrStdout(), res)
	},
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Re-derive every record from the fight log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).RecomputeAll(ctx)
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

func init() {
	championCmd.AddCommand(championSetCmd, championClearCmd)
}
