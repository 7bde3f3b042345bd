package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
	"github.com/hailam/chesscore/internal/history"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	fen        = flag.String("fen", board.StartFEN, "position to search")
	moves      = flag.String("moves", "", "space-separated moves in coordinate notation to play first")
	depth      = flag.Int("depth", 5, "perft depth")
	divide     = flag.Bool("divide", false, "print the count below each root move")
	parallel   = flag.Int("parallel", 0, "split root moves over N workers (0 = GOMAXPROCS, 1 = sequential)")
	hashMB     = flag.Int("hash", 0, "perft hash table size in MB (0 disables it)")
	verify     = flag.Bool("verify", false, "cross-check the divide against the reference generator")
	useCache   = flag.Bool("cache", false, "read and store results in the perft database")
	dbDir      = flag.String("db", "", "perft database directory (default: platform data dir)")
	diagramOut = flag.String("diagram", "", "write a PNG diagram of the position to this file")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("bad -fen: %v", err)
	}
	if err := playMoves(pos, *moves); err != nil {
		log.Fatalf("bad -moves: %v", err)
	}
	fmt.Print(pos)

	if *diagramOut != "" {
		if err := writeDiagram(*diagramOut, pos); err != nil {
			log.Fatalf("diagram: %v", err)
		}
		log.Printf("diagram written to %s", *diagramOut)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, pos); err != nil {
		log.Fatal(err)
	}
}

// playMoves applies moves from the -moves flag and reports the resulting game state.
func playMoves(pos *board.Position, moves string) error {
	fields := strings.Fields(moves)
	if len(fields) == 0 {
		return nil
	}
	h := history.New(pos)
	for _, text := range fields {
		m, ok := findLegal(pos, text)
		if !ok {
			return fmt.Errorf("%s is not legal in %s", text, pos.ToFEN())
		}
		h.Play(pos, m)
	}
	log.Printf("after %d moves: %v", len(fields), pos.GameResultWithHistory(h))
	return nil
}

func findLegal(pos *board.Position, text string) (board.Move, bool) {
	for _, m := range pos.GenerateLegalMoves().Slice() {
		if m.String() == text {
			return m, true
		}
	}
	return board.NoMove, false
}

func writeDiagram(path string, pos *board.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := diagram.WritePNG(f, pos, diagram.Options{Coordinates: true}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(ctx context.Context, pos *board.Position) error {
	key := pos.ToFEN()

	var store *storage.Storage
	if *useCache {
		var err error
		if *dbDir != "" {
			store, err = storage.Open(*dbDir)
		} else {
			store, err = storage.NewStorage()
		}
		if err != nil {
			return fmt.Errorf("open perft database: %w", err)
		}
		defer store.Close()

		rec, err := store.LoadPerft(key, *depth)
		switch {
		case err == nil:
			log.Printf("cached result from run %s (%s)", rec.RunID, rec.RecordedAt.Format(time.RFC3339))
			report(rec)
			return nil
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
	}

	start := time.Now()
	rec := &storage.PerftRecord{FEN: key, Depth: *depth}
	workers := *parallel
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	switch {
	case *depth <= 0:
		rec.Nodes = perft.Perft(pos, *depth)
	case *hashMB > 0:
		ht := perft.NewHashTable(*hashMB)
		entries, err := perft.HashedDivide(ctx, pos, *depth, workers, ht)
		if err != nil {
			return err
		}
		rec.Divide = entries
		rec.Nodes = perft.Total(entries)
		log.Printf("hash hit rate %.1f%%", 100*ht.HitRate())
	case workers > 1:
		entries, err := perft.ParallelDivide(ctx, pos, *depth, workers)
		if err != nil {
			return err
		}
		rec.Divide = entries
		rec.Nodes = perft.Total(entries)
	default:
		rec.Divide = perft.Divide(pos, *depth)
		rec.Nodes = perft.Total(rec.Divide)
	}
	rec.Elapsed = time.Since(start)
	report(rec)

	if *verify {
		mismatches := perft.CrossCheck(pos, *depth)
		for _, m := range mismatches {
			fmt.Println("MISMATCH", m)
		}
		if len(mismatches) > 0 {
			return fmt.Errorf("%d root moves disagree with the reference generator", len(mismatches))
		}
		log.Printf("verified against reference generator")
	}

	if store != nil {
		if err := store.SavePerft(rec); err != nil {
			return fmt.Errorf("save perft result: %w", err)
		}
	}
	return nil
}

func report(rec *storage.PerftRecord) {
	if *divide {
		for _, e := range rec.Divide {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
		}
		fmt.Println()
	}
	fmt.Printf("depth %d nodes %d", rec.Depth, rec.Nodes)
	if nps := rec.NodesPerSecond(); nps > 0 {
		fmt.Printf(" time %v nps %.0f", rec.Elapsed.Round(time.Millisecond), nps)
	}
	fmt.Println()
}
