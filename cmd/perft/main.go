// perft is a movegen debugging tool: it counts legal move tree nodes per
// ply from a starting position. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/boweiliu/underchex/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 3, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	pos := board.StandardStartingPosition()

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(pos, board.White, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}
	logw.Infof(ctx, "perft done: depth=%v", *depth)
}

func search(pos *board.Position, turn board.Color, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range pos.LegalMoves(turn) {
		next := pos.ApplyMove(m)
		count := search(next, turn.Opponent(), depth-1, false)
		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
