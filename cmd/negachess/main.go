package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/negachess/board"
	"github.com/daystram/negachess/uci"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft mode to the given depth")
	perftParallel = flag.Bool("perft.parallel", false, "walk root moves concurrently in perft mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepSeed  = flag.Uint64("step.seed", 1, "random seed in step mode")
	stepCount = flag.Int("step.count", 500, "max plies in step mode")

	searchDepth = flag.Uint("search", 0, "run search mode to the given depth")
	searchSteps = flag.Int("search.steps", 50, "max plies in search mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen, *movegenDraw)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, fen, *perftParallel)
	}
	if *stepRun {
		return step(fen, *stepSeed, *stepCount)
	}
	if *searchDepth > 0 {
		return search(fen, uint8(*searchDepth), *searchSteps)
	}

	return uci.NewInterface(&uci.InterfaceConfig{}).Run()
}
