package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"ufl-rankings/internal/rpc"
)

func printFighters(w io.Writer, fighters []rpc.Fighter) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATFORM\tNAME\tW\tL\tD\tKO\t")
	for _, f := range fighters {
		name := f.Name
		if f.Champion {
			name += " (C)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t\n", f.Platform, name, f.Wins, f.Losses, f.Draws, f.KOWins)
	}
	return tw.Flush()
}

func printFights(w io.Writer, fights []rpc.Fight) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tPLATFORM\tFIGHTER 1\tFIGHTER 2\tWINNER\tMETHOD\t")
	for _, f := range fights {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n", f.ID, f.Date, f.Platform, f.Fighter1, f.Fighter2, f.Winner, f.Method)
	}
	return tw.Flush()
}

func printMutation(w io.Writer, res *rpc.MutationResponse) error {
	if len(res.Fighters) > 0 {
		if err := printFighters(w, res.Fighters); err != nil {
			return err
		}
	}
	if len(res.Fights) > 0 {
		if len(res.Fighters) > 0 {
			fmt.Fprintln(w)
		}
		return printFights(w, res.Fights)
	}
	return nil
}

func printRanking(w io.Writer, r *rpc.GetRankingResponse) error {
	if r.Degraded {
		fmt.Fprintln(w, "warning: served from cache, store unavailable")
	}
	if r.Champion != nil {
		c := r.Champion
		fmt.Fprintf(w, "UFL %s champion: %s (%d-%d-%d, %d KO)\n\n", r.Platform, c.Name, c.Wins, c.Losses, c.Draws, c.KOWins)
	} else {
		fmt.Fprintf(w, "UFL %s champion: vacant\n\n", r.Platform)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tRECORD\tKO\tSCORE\tRECENT\t")
	for _, c := range r.Contenders {
		f := c.Fighter
		fmt.Fprintf(tw, "%d\t%s\t%d-%d-%d\t%d\t%d\t%d\t\n", c.Position, f.Name, f.Wins, f.Losses, f.Draws, f.KOWins, c.Score, c.RecentWins)
	}
	return tw.Flush()
}
