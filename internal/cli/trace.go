package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/ir"
	"github.com/roach88/sortscope/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database  string
	Recording string
	Kind      string
	From      int
	To        int
}

// TraceStats counts the operations of the whole log by kind.
type TraceStats struct {
	Total  int `json:"total"`
	Reads  int `json:"reads"`
	Writes int `json:"writes"`
	Swaps  int `json:"swaps"`
}

// TraceResult holds the trace output for one recording.
type TraceResult struct {
	Recording store.RecordingInfo `json:"recording"`
	Entries   []store.Entry       `json:"entries"`
	Stats     TraceStats          `json:"stats"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the operation log of a recording",
		Long: `Print the logged operations of one stored recording in log order.

Entries keep their position in the log, so a filtered trace still shows
when each operation happened.

Examples:
  sortscope trace --db ./runs.db --recording 5f2a...
  sortscope trace --db ./runs.db --recording 5f2a... --kind swap
  sortscope trace --db ./runs.db --recording 5f2a... --from 100 --to 200`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Recording, "recording", "", "recording ID to trace (required)")
	_ = cmd.MarkFlagRequired("recording")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "filter to one kind (read|write|swap)")
	cmd.Flags().IntVar(&opts.From, "from", 0, "first log position")
	cmd.Flags().IntVar(&opts.To, "to", -1, "end log position, exclusive (-1 for the end)")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	kind := ir.OpKind(opts.Kind)
	if kind != "" && !kind.Valid() {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --kind %q: must be read, write or swap", opts.Kind))
	}
	if opts.From < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --from %d", opts.From))
	}

	st, err := store.Open(opts.Database, store.WithLogger(opts.Logger(cmd.ErrOrStderr())))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	info, err := st.ReadRecordingInfo(ctx, opts.Recording)
	if errors.Is(err, store.ErrRecordingNotFound) {
		return WrapExitError(ExitCommandError, "unknown recording", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read recording", err)
	}

	entries, err := st.ReadEntries(ctx, opts.Recording, kind, opts.From, opts.To)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read operations", err)
	}

	all, err := st.ReadOperations(ctx, opts.Recording, 0, -1)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read operations", err)
	}

	result := TraceResult{
		Recording: info,
		Entries:   entries,
		Stats:     countOps(all),
	}

	if opts.Format == "json" {
		return respond(cmd.OutOrStdout(), result, nil)
	}
	outputTraceText(cmd.OutOrStdout(), result)
	return nil
}

func countOps(ops []ir.Operation) TraceStats {
	stats := TraceStats{Total: len(ops)}
	for _, op := range ops {
		switch op.Kind {
		case ir.OpRead:
			stats.Reads++
		case ir.OpWrite:
			stats.Writes++
		case ir.OpSwap:
			stats.Swaps++
		}
	}
	return stats
}

// outputTraceText outputs the trace as text.
func outputTraceText(w io.Writer, result TraceResult) {
	info := result.Recording
	fmt.Fprintf(w, "Recording %s\n", info.ID)
	fmt.Fprintf(w, "  Method: %s, length %d, run %s\n", info.Method, info.Length, info.RunToken)
	fmt.Fprintf(w, "  Ops: %d (%d reads, %d writes, %d swaps)\n",
		result.Stats.Total, result.Stats.Reads, result.Stats.Writes, result.Stats.Swaps)
	fmt.Fprintln(w)

	if len(result.Entries) == 0 {
		fmt.Fprintln(w, "No operations in range.")
		return
	}
	for _, e := range result.Entries {
		fmt.Fprintf(w, "%6d  %s\n", e.Seq, e.Op)
	}
}
