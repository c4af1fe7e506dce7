package main

import (
	"time"
	"ufl-rankings/internal/domain"
	"ufl-rankings/internal/rpc"

	"github.com/spf13/cobra"
)

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Manage the fight log",
}

var fightAddCmd = &cobra.Command{
	Use:   "add <platform> <fighter1> <fighter2> <winner|Draw> <KO|Decision|Draw>",
	Short: "Record a fight",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().UTC().Format(domain.DateLayout)
		}
		req := &rpc.AddFightRequest{
			Platform: args[0],
			Fighter1: args[1],
			Fighter2: args[2],
			Winner:   args[3],
			Method:   args[4],
			Date:     date,
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).AddFight(ctx, req)
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var fightEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a fight; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &rpc.EditFightRequest{ID: args[0]}
		fields := map[string]**string{
			"fighter1": &req.Fighter1,
			"fighter2": &req.Fighter2,
			"winner":   &req.Winner,
			"method":   &req.Method,
			"platform": &req.Platform,
			"date":     &req.Date,
		}
		for name, field := range fields {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetString(name)
				*field = &v
			}
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).EditFight(ctx, req)
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var fightDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a fight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).DeleteFight(ctx, args[0])
		if err != nil {
			return err
		}
		return output(cmd, res)
	},
}

var fightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fights",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, _ := cmd.Flags().GetString("platform")
		query, _ := cmd.Flags().GetString("query")

		ctx, cancel := commandContext(cmd)
		defer cancel()
		res, err := newClient(cmd).ListFights(ctx, platform, query)
		if err != nil {
			return err
		}
		if wantJSON(cmd) {
			return printJSON(cmd.OutOrStdout(), res)
		}
		return printFights(cmd.OutOrStdout(), res.Fights)
	},
}

func init() {
	fightAddCmd.Flags().String("date", "", "Fight date as YYYY-MM-DD (default today)")

	fightEditCmd.Flags().String("fighter1", "", "First fighter")
	fightEditCmd.Flags().String("fighter2", "", "Second fighter")
	fightEditCmd.Flags().String("winner", "", "Winner, or Draw")
	fightEditCmd.Flags().String("method", "", "KO, Decision or Draw")
	fightEditCmd.Flags().String("platform", "", "Platform")
	fightEditCmd.Flags().String("date", "", "Fight date as YYYY-MM-DD")

	fightListCmd.Flags().String("platform", "", "Only fights of this platform")
	fightListCmd.Flags().StringP("query", "q", "", "Case-insensitive fighter or winner filter")

	fightCmd.AddCommand(fightAddCmd, fightEditCmd, fightDeleteCmd, fightListCmd)
}
