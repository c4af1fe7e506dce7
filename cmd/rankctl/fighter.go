package main

import (
	"ufl-rankings/internal/rpc"

	"github.com/spf13/cobra"
)

var fighterCmd = &cobra.Command{
	Use:   "fighter",
	Short: "Manage fighters",
}

var fighterAddCmd = &cobra.Command{
	Use:   "add <platform> <name>",
	Short: "Register a fighter on a platform",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).AddFighter(ctx, args[1], args[0])
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var fighterRenameCmd = &cobra.Command{
	Use:   "rename <platform> <old-name> <new-name>",
	Short: "Rename a fighter and every fight that references it",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).RenameFighter(ctx, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var fighterDeleteCmd = &cobra.Command{
	Use:   "delete <platform> <name>",
	Short: "Delete a fighter together with its fights",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).DeleteFighter(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var fighterOverrideCmd = &cobra.Command{
	Use:   "override <platform> <name>",
	Short: "Overwrite a fighter's record until the next recompute",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &rpc.OverrideRecordRequest{Platform: args[0], Name: args[1]}
		req.Wins, _ = cmd.Flags().GetInt("wins")
		req.Losses, _ = cmd.Flags().GetInt("losses")
		req.Draws, _ = cmd.Flags().GetInt("draws")
		req.KOWins, _ = cmd.Flags().GetInt("ko")

		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).OverrideRecord(ctx, req)
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var fighterShowCmd = &cobra.Command{
	Use:   "show <platform> <name>",
	Short: "Show a fighter with its fights",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).GetFighter(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), res)
		}
		return printMutation(cmd.OutOrStdout(), &rpc.MutationResponse{Fighters: []rpc.Fighter{res.Fighter}, Fights: res.Fights})
	},
}

var fighterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fighters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, _ := cmd.Flags().GetString("platform")
		query, _ := cmd.Flags().GetString("query")

		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).ListFighters(ctx, platform, query)
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), res)
		}
		return printFighters(cmd.OutOrStdout(), res.Fighters)
	},
}

func init() {
	fighterOverrideCmd.Flags().Int("wins", 0, "Wins")
	fighterOverrideCmd.Flags().Int("losses", 0, "Losses")
	fighterOverrideCmd.Flags().Int("draws", 0, "Draws")
	fighterOverrideCmd.Flags().Int("ko", 0, "Wins by KO")

	fighterListCmd.Flags().String("platform", "", "Only fighters of this platform")
	fighterListCmd.Flags().StringP("query", "q", "", "Case-insensitive name filter")

	fighterCmd.AddCommand(fighterAddCmd, fighterRenameCmd, fighterDeleteCmd, fighterOverrideCmd, fighterShowCmd, fighterListCmd)
}

func output(cmd *cobra.Command, res *rpc.MutationResponse) error {
	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), res)
	}
	return printMutation(cmd.OutOrStdout(), res)
}
