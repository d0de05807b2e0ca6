package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
	RunToken string // optional - one run only
}

// RunSummary describes one run token in the archive.
type RunSummary struct {
	RunToken   string   `json:"run_token"`
	Recordings int      `json:"recordings"`
	Methods    []string `json:"methods"`
	TotalOps   int      `json:"total_ops"`
	LastSeq    int64    `json:"last_seq"`
}

// RunsResult is the output of the runs command.
type RunsResult struct {
	Runs    []RunSummary `json:"runs"`
	LastSeq int64        `json:"last_seq"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs",
		Long: `List every run token in the archive, in the order the runs were
recorded, with the methods each run recorded and their total log size.

Examples:
  sortscope runs --db ./runs.db
  sortscope runs --db ./runs.db --run 01927c3e-... --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunToken, "run", "", "show one run only")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database, store.WithLogger(opts.Logger(cmd.ErrOrStderr())))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	tokens := []string{opts.RunToken}
	if opts.RunToken == "" {
		if tokens, err = st.ListRunTokens(ctx); err != nil {
			return WrapExitError(ExitCommandError, "failed to list runs", err)
		}
	}

	result := RunsResult{Runs: make([]RunSummary, 0, len(tokens))}
	if result.LastSeq, err = st.GetLastSeq(ctx); err != nil {
		return WrapExitError(ExitCommandError, "failed to read last seq", err)
	}

	for _, token := range tokens {
		state, err := st.GetRunState(ctx, token)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to read run %s", token), err)
		}
		if len(state.Recordings) == 0 {
			return NewExitError(ExitCommandError, fmt.Sprintf("unknown run: %s", token))
		}
		summary := RunSummary{
			RunToken:   state.RunToken,
			Recordings: len(state.Recordings),
			Methods:    make([]string, len(state.Recordings)),
			TotalOps:   state.TotalOps,
			LastSeq:    state.LastSeq,
		}
		for i, info := range state.Recordings {
			summary.Methods[i] = info.Method
		}
		result.Runs = append(result.Runs, summary)
	}

	if opts.Format == "json" {
		return respond(cmd.OutOrStdout(), result, nil)
	}
	outputRunsText(cmd.OutOrStdout(), result)
	return nil
}

func outputRunsText(w io.Writer, result RunsResult) {
	if len(result.Runs) == 0 {
		fmt.Fprintln(w, "No runs found in database.")
		return
	}
	fmt.Fprintf(w, "Runs: %d (last seq %d)\n", len(result.Runs), result.LastSeq)
	for _, r := range result.Runs {
		fmt.Fprintf(w, "  %s  %d recording(s)  %d ops  %s\n",
			r.RunToken, r.Recordings, r.TotalOps, strings.Join(r.Methods, ", "))
	}
}
