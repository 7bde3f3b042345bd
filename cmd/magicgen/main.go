package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/magicgen"
)

var (
	seed = flag.Uint64("seed", uint64(time.Now().UnixNano()), "PRNG seed")
	out  = flag.String("out", "", "output file (default: stdout)")
)

func main() {
	flag.Parse()
	log.Printf("searching magics with seed %d", *seed)

	g := magicgen.New(*seed)
	start := time.Now()
	rook, err := g.Generate(board.Rook)
	if err != nil {
		log.Fatal(err)
	}
	bishop, err := g.Generate(board.Bishop)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("found all magics in %v (rook table %d, bishop table %d)",
		time.Since(start).Round(time.Millisecond), rook.Size, bishop.Size)

	var buf bytes.Buffer
	if err := magicgen.WriteTable(&buf, rook, bishop); err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
