package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nijaru/yt-kb/config"
	"github.com/nijaru/yt-kb/db"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var runsFlags struct {
	limit int
	key   string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent runs recorded in the ledger.",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsFlags.limit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().StringVar(&runsFlags.key, "key", "", "Show attempts for one storage key in the first --folder instead")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if cfg.DBPath == "" {
		return errors.New("DB_PATH is not set; no run ledger to read")
	}

	ledger, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer ledger.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if runsFlags.key != "" {
		if len(cmdFlags.folders) == 0 {
			return errors.New("--key needs --folder")
		}
		attempts, err := ledger.AttemptsForKey(ctx, cmdFlags.folders[0], runsFlags.key)
		if err != nil {
			return err
		}
		return printAttempts(out, attempts)
	}

	runs, err := ledger.RecentRuns(ctx, runsFlags.limit)
	if err != nil {
		return err
	}
	return printRuns(out, runs)
}

func printRuns(w io.Writer, runs []db.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODE\tSTARTED\tFINISHED\tTOTAL\tSKIPPED\tSUCCESS\tFAILED")
	for _, r := range runs {
		finished := "-"
		if r.FinishedAt.Valid {
			finished = r.FinishedAt.Time.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			r.ID, r.Mode, r.StartedAt.Format("2006-01-02 15:04:05"), finished,
			r.Total, r.Skipped, r.Success, r.Failed)
	}
	return tw.Flush()
}

func printAttempts(w io.Writer, attempts []db.Attempt) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tVIDEO\tSTATUS\tREASON\tAT")
	for _, a := range attempts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			a.RunID, a.VideoID, a.Status, a.Reason, a.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}
