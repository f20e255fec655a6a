package main

import (
	"fmt"
	"log"
	"time"

	"github.com/daystram/negachess/board"
)

func step(fen string, seed uint64, count int) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
		timesState         []time.Duration
	)
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	r := board.NewPseudoRand(seed)
	for step := 0; step < count; step++ {
		t1 := time.Now()
		mvs := b.GenerateMoves()
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			break
		}
		mv := mvs[r.Intn(len(mvs))]

		t1 = time.Now()
		b = b.Apply(mv)
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))

		t1 = time.Now()
		st := b.State()
		t2 = time.Now()
		timesState = append(timesState, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", step/2+1, mv.IsTurn, mv)
		fmt.Println(b.Draw())
		fmt.Println(b.FEN())
		if !st.IsRunning() {
			break
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(b.State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("state:", avg(timesState))
	return nil
}
