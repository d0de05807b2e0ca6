package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/engine"
	"github.com/roach88/sortscope/internal/list"
	"github.com/roach88/sortscope/internal/render"
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Method     string
	Length     int
	Seed       uint64
	Rate       int
	FPS        int
	MaxFrames  int
	Height     int
	Plain      bool
	Shuffle    bool
	Sweep      bool
	SkipSorted bool
}

// PlaySummary is the JSON output of the play command.
type PlaySummary struct {
	Method   string `json:"method"`
	Length   int    `json:"length"`
	Frames   int    `json:"frames"`
	Cursor   int    `json:"cursor"`
	OpCount  int    `json:"op_count"`
	Complete bool   `json:"complete"`
	Final    []int  `json:"final"`
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate a sorting run in the terminal",
		Long: `Record a run and play it back in the terminal at a fixed rate.

Each frame shows the current values as bars. Recently read elements are
highlighted, fading with age. Ctrl-C stops playback.

Examples:
  sortscope play --method merge --length 48
  sortscope play --method bubble --length 24 --rate 200 --sweep
  sortscope play --method quick --plain --max-frames 1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Method, "method", string(algo.Quick), "method to play")
	cmd.Flags().IntVar(&opts.Length, "length", 32, "number of elements")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for the starting permutation (random when unset)")
	cmd.Flags().IntVar(&opts.Rate, "rate", engine.DefaultRate, "operations per second")
	cmd.Flags().IntVar(&opts.FPS, "fps", 30, "frames per second")
	cmd.Flags().IntVar(&opts.MaxFrames, "max-frames", 0, "stop after this many frames (0 plays to the end)")
	cmd.Flags().IntVar(&opts.Height, "height", render.DefaultHeight, "chart height in rows")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "ASCII output without colour or screen clearing")
	cmd.Flags().BoolVar(&opts.Shuffle, "shuffle", false, "start sorted and animate the shuffle")
	cmd.Flags().BoolVar(&opts.Sweep, "sweep", false, "finish with a read sweep")
	cmd.Flags().BoolVar(&opts.SkipSorted, "skip-sorted", false, "skip the algorithm when the start is already sorted")

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command) error {
	method, err := algo.Lookup(opts.Method)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --method", err)
	}
	if opts.Length < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --length %d", opts.Length))
	}
	if opts.FPS < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --fps %d", opts.FPS))
	}

	engineOpts := []engine.Option{
		engine.WithRate(opts.Rate),
		engine.WithAnimatedShuffle(opts.Shuffle),
		engine.WithSweep(opts.Sweep),
		engine.WithSkipSorted(opts.SkipSorted),
		engine.WithLogger(opts.Logger(cmd.ErrOrStderr())),
	}
	if cmd.Flags().Changed("seed") {
		engineOpts = append(engineOpts, engine.WithSeed(opts.Seed))
	}

	var player *engine.Player
	if err := list.Capture(func() { player = engine.New(opts.Length, method, engineOpts...) }); err != nil {
		return WrapExitError(ExitFailure, "recording failed", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// JSON output skips drawing and reports where playback stopped.
	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		out = io.Discard
	}

	frames := playLoop(ctx, player, out, opts)

	if opts.Format == "json" {
		return respond(cmd.OutOrStdout(), PlaySummary{
			Method:   player.Method(),
			Length:   player.Len(),
			Frames:   frames,
			Cursor:   player.Cursor(),
			OpCount:  player.OpCount(),
			Complete: player.IsComplete(),
			Final:    player.View(),
		}, nil)
	}
	return nil
}

// playLoop draws one frame per tick until playback completes, the frame
// limit is reached or ctx is cancelled. It returns the number of frames
// drawn.
func playLoop(ctx context.Context, player *engine.Player, out io.Writer, opts *PlayOptions) int {
	r := render.New(out, opts.Height, opts.Plain)
	draw := func() {
		if !opts.Plain {
			fmt.Fprint(out, clearScreen)
		}
		fmt.Fprintln(out, r.Render(render.FrameOf(player)))
	}

	ticker := time.NewTicker(time.Second / time.Duration(opts.FPS))
	defer ticker.Stop()

	player.Tick(time.Now())
	draw()
	frames := 1
	for !player.IsComplete() && (opts.MaxFrames <= 0 || frames < opts.MaxFrames) {
		select {
		case <-ctx.Done():
			return frames
		case now := <-ticker.C:
			player.Tick(now)
			draw()
			frames++
		}
	}
	return frames
}
