package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/engine"
	"github.com/roach88/sortscope/internal/ir"
	"github.com/roach88/sortscope/internal/list"
	"github.com/roach88/sortscope/internal/store"
)

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
	Database   string
	Methods    []string
	Length     int
	Seed       uint64
	Start      []int
	Shuffle    bool
	Sweep      bool
	SkipSorted bool

	// Tokens issues the run token. Nil uses UUIDv7 tokens.
	Tokens engine.TokenGenerator
}

// RecordedItem describes one recording written by the record command.
type RecordedItem struct {
	ID       string `json:"id"`
	Method   string `json:"method"`
	Length   int    `json:"length"`
	OpCount  int    `json:"op_count"`
	Inserted bool   `json:"inserted"`
}

// RecordResult is the output of the record command.
type RecordResult struct {
	RunToken   string         `json:"run_token"`
	Recordings []RecordedItem `json:"recordings"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	return newRecordCommand(&RecordOptions{RootOptions: rootOpts})
}

func newRecordCommand(opts *RecordOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record sorting runs into the archive",
		Long: `Record one or more methods against the same starting permutation and
store the operation logs under a single run token.

Methods are recorded concurrently, each against its own instrumented array.

Examples:
  sortscope record --db ./runs.db --method quick,merge --length 64 --seed 7
  sortscope record --db ./runs.db --method bubble --start 3,1,4,2 --sweep`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringSliceVar(&opts.Methods, "method", []string{string(algo.Quick)}, "methods to record (comma separated)")
	cmd.Flags().IntVar(&opts.Length, "length", 32, "number of elements")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for the starting permutation (random when unset)")
	cmd.Flags().IntSliceVar(&opts.Start, "start", nil, "explicit starting values, e.g. 3,1,4,2")
	cmd.Flags().BoolVar(&opts.Shuffle, "shuffle", false, "start sorted and record the shuffle")
	cmd.Flags().BoolVar(&opts.Sweep, "sweep", false, "append a final read sweep")
	cmd.Flags().BoolVar(&opts.SkipSorted, "skip-sorted", false, "skip the algorithm when the start is already sorted")

	return cmd
}

func runRecord(opts *RecordOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger(cmd.ErrOrStderr())

	methods, err := parseMethods(opts.Methods)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --method", err)
	}

	length := opts.Length
	if len(opts.Start) > 0 && !cmd.Flags().Changed("length") {
		length = len(opts.Start)
	}
	if length < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --length %d", length))
	}

	engineOpts := []engine.Option{
		engine.WithAnimatedShuffle(opts.Shuffle),
		engine.WithReshuffle(opts.Shuffle),
		engine.WithSweep(opts.Sweep),
		engine.WithSkipSorted(opts.SkipSorted),
		engine.WithLogger(logger),
	}
	if len(opts.Start) > 0 {
		engineOpts = append(engineOpts, engine.WithStart(opts.Start))
	}
	// Every method sees the same seed, so all of them sort the same input.
	seed := opts.Seed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}
	engineOpts = append(engineOpts, engine.WithSeed(seed))
	logger.Debug("recording run", "methods", len(methods), "length", length, "seed", seed)

	recordings, err := recordAll(ctx, methods, length, engineOpts)
	if err != nil {
		return WrapExitError(ExitFailure, "recording failed", err)
	}

	st, err := store.Open(opts.Database, store.WithLogger(logger))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	tokens := opts.Tokens
	if tokens == nil {
		tokens = engine.UUIDv7Generator{}
	}
	result := RecordResult{
		RunToken:   tokens.Generate(),
		Recordings: make([]RecordedItem, 0, len(recordings)),
	}

	// The store has a single writer; recordings are written in method order.
	for _, rec := range recordings {
		id, inserted, err := st.WriteRecording(ctx, result.RunToken, rec)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to write recording", err)
		}
		result.Recordings = append(result.Recordings, RecordedItem{
			ID:       id,
			Method:   rec.Method,
			Length:   rec.Len(),
			OpCount:  len(rec.Ops),
			Inserted: inserted,
		})
	}

	if opts.Format == "json" {
		response := CLIResponse{Status: "ok", Data: result, TraceID: result.RunToken}
		return writeJSON(cmd.OutOrStdout(), response)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Run %s\n", result.RunToken)
	for _, item := range result.Recordings {
		note := ""
		if !item.Inserted {
			note = " (already stored)"
		}
		fmt.Fprintf(w, "  %-10s %6d ops  %s%s\n", item.Method, item.OpCount, item.ID, note)
	}
	return nil
}

// recordAll records every method concurrently. Each goroutine owns its
// Array until it hands back the frozen Recording.
func recordAll(ctx context.Context, methods []algo.Method, length int, opts []engine.Option) ([]ir.Recording, error) {
	recordings := make([]ir.Recording, len(methods))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range methods {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var p *engine.Player
			if err := list.Capture(func() { p = engine.New(length, m, opts...) }); err != nil {
				return fmt.Errorf("%s: %w", m, err)
			}
			recordings[i] = p.Recording()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recordings, nil
}

// parseMethods resolves method names, dropping duplicates.
func parseMethods(names []string) ([]algo.Method, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no methods given")
	}
	seen := make(map[algo.Method]bool, len(names))
	methods := make([]algo.Method, 0, len(names))
	for _, name := range names {
		m, err := algo.Lookup(name)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		methods = append(methods, m)
	}
	return methods, nil
}
