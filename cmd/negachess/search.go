package main

import (
	"fmt"
	"log"
	"time"

	"github.com/daystram/negachess/board"
	"github.com/daystram/negachess/engine"
)

// search plays the side to move with the engine against random replies.
func search(fen string, depth uint8, steps int) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	r := board.NewPseudoRand(uint64(time.Now().UnixNano()))
	e := engine.NewEngine(&engine.EngineConfig{
		Logger: log.Println,
		Debug:  true,
	})
	fmt.Println(b.Draw())
	fmt.Println(b.FEN())

	playingSide := b.Turn()
	getMove := func(b *board.Board) (board.Move, error) {
		if b.Turn() == playingSide {
			return e.Search(b, depth)
		}
		mv, ok := b.RandomMove(r)
		if !ok {
			return board.Move{}, engine.ErrNoLegalMoves
		}
		return mv, nil
	}

	var history []board.Move
	for step := 1; step <= steps && b.State().IsRunning(); step++ {
		mv, err := getMove(b)
		if err != nil {
			return err
		}
		b = b.Apply(mv)
		history = append(history, mv)

		fmt.Printf("\n>>> %s: %s\n", mv.IsTurn, mv)
		fmt.Println(b.FEN())
		fmt.Println(b.Draw())
	}
	log.Println("=============== game ended:", b.State())
	fmt.Println(b.FEN())
	dumpHistory(history)

	return nil
}

func dumpHistory(mvs []board.Move) {
	for i, mv := range mvs {
		if mv.IsTurn == board.SideWhite {
			fmt.Printf("%d.", i/2+1)
		} else if i == 0 {
			fmt.Print("1...")
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}
