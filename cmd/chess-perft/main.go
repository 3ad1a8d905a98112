// chess-perft counts the legal move tree below a position, for checking
// move generation against published node counts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

var (
	fen        = flag.String("fen", engine.InitialFEN, "Position to count from")
	depth      = flag.Int("depth", 3, "Depth in plies")
	workers    = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	cacheSize  = flag.Int("cache", -1, "Node-count table entries (0 = disabled, -1 = default)")
	divide     = flag.Bool("divide", false, "Print the count below each root move")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	timeout    = flag.Duration("timeout", 0, "Stop after this long (0 = no limit)")
	verbose    = flag.Bool("v", false, "Log progress to stderr")
)

func main() {
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.NewPerftConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	pos, err := engine.NewPositionFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	res := worker.Divide(ctx, &pos, cfg.Depth, cfg)
	elapsed := time.Since(start)

	if err := report(os.Stdout, res, elapsed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !res.Complete {
		log.Warn("count incomplete: timed out")
		os.Exit(1)
	}
}

// applyFlags applies command-line flags to the perft configuration.
func applyFlags(cfg *config.PerftConfig) {
	cfg.Depth = *depth
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *cacheSize >= 0 {
		cfg.CacheEntries = *cacheSize
	}
}

// report writes the result as text or JSON.
func report(w io.Writer, res worker.DivideResult, elapsed time.Duration) error {
	if *jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if *divide {
		for _, mc := range res.Moves {
			fmt.Fprintf(w, "%s: %d\n", mc.Move, mc.Nodes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Depth: %d\n", res.Depth)
	fmt.Fprintf(w, "Nodes: %d\n", res.Nodes)
	fmt.Fprintf(w, "Time:  %v\n", elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(w, "NPS:   %.0f\n", float64(res.Nodes)/secs)
	}
	return nil
}
