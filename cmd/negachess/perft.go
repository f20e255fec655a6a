package main

import (
	"log"

	"github.com/daystram/negachess/bench"
)

func perft(depth int, fen string, parallel bool) error {
	mode := "dfs"
	if parallel {
		mode = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, mode)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	_, err := bench.Run(depth, fen, parallel, true, out)
	close(out)
	<-done
	return err
}
