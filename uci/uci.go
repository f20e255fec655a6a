package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/daystram/negachess/bench"
	"github.com/daystram/negachess/board"
	"github.com/daystram/negachess/engine"
)

const (
	DefaultSearchDepth uint8 = 3
	MaxSearchDepth     uint8 = 8
)

var (
	EngineName   = "Negachess"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		debug:         false,
		depth:         DefaultSearchDepth,
		parallelPerft: true,
	}
)

type options struct {
	debug         bool
	depth         uint8
	parallelPerft bool
}

type InterfaceConfig struct {
	In  io.Reader
	Out io.Writer
}

// Interface is a line-based driver around a single board. Commands are run
// synchronously in the order they are read.
type Interface struct {
	board   *board.Board
	engine  *engine.Engine
	options options

	in  io.Reader
	out io.Writer
}

func NewInterface(cfg *InterfaceConfig) *Interface {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	return &Interface{
		options: defaultOptions,
		in:      cfg.In,
		out:     cfg.Out,
	}
}

// Run reads commands until quit or the end of input.
func (i *Interface) Run() error {
	i.reset()

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "uci":
			i.commandUCI()
		case "ucinewgame":
			i.reset()
		case "isready":
			i.commandReady()
		case "setoption":
			i.commandSetOption(args[1:])
		case "position":
			i.commandPosition(args[1:])
		case "d":
			i.commandDraw()
		case "go":
			i.commandGo(args[1:])
		case "quit":
			return nil
		default:
			i.println(fmt.Sprintf("info string unknown command: %s", args[0]))
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name Depth type spin default %d min 1 max %d", defaultOptions.depth, MaxSearchDepth))
	i.println(fmt.Sprintf("option name ParallelPerft type check default %v", defaultOptions.parallelPerft))
	i.println("uciok")
}

func (i *Interface) commandReady() {
	if i.board != nil && i.engine != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return
		}
		i.options.debug = value
		i.resetEngine()
	case "depth":
		value, err := parseDepth(valueStr)
		if err != nil {
			return
		}
		i.options.depth = value
	case "parallelperft":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return
		}
		i.options.parallelPerft = value
	}
}

func (i *Interface) commandPosition(args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	var mvs []string
	for j, arg := range args {
		if arg == "moves" {
			mvs = args[j+1:]
			args = args[:j]
			break
		}
	}
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		i.println(fmt.Sprintf("info string %s", err))
		return
	}
	for _, uci := range mvs {
		mv, err := b.FindMove(uci)
		if err != nil {
			i.println(fmt.Sprintf("info string %s", err))
			return
		}
		b = b.Apply(mv)
	}
	i.board = b
}

func (i *Interface) commandDraw() {
	i.println(i.board.Draw())
	i.println(fmt.Sprintf("Fen: %s", i.board.FEN()))
}

func (i *Interface) commandGo(args []string) {
	depth := i.options.depth
	if len(args) == 2 {
		switch mode := args[0]; mode {
		case "perft":
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return
			}

			out := make(chan string, 64)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for s := range out {
					i.println(s)
				}
			}()
			_, err = bench.Run(d, i.board.FEN(), i.options.parallelPerft, true, out)
			close(out)
			<-done
			if err != nil {
				i.println(fmt.Sprintf("info string %s", err))
			}
			return
		case "depth":
			d, err := parseDepth(args[1])
			if err != nil {
				i.println(fmt.Sprintf("info string %s", err))
				return
			}
			depth = d
		}
	}

	bestMove, err := i.engine.Search(i.board, depth)
	if err != nil && !errors.Is(err, engine.ErrNoLegalMoves) {
		i.println(fmt.Sprintf("info string %s", err))
		return
	}
	i.println(fmt.Sprintf("bestmove %s", bestMove.UCI()))
}

func (i *Interface) reset() {
	i.commandPosition([]string{"startpos"})
	i.resetEngine()
}

func (i *Interface) resetEngine() {
	i.engine = engine.NewEngine(&engine.EngineConfig{
		Logger: i.println,
		Debug:  i.options.debug,
	})
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

func parseDepth(s string) (uint8, error) {
	d, err := strconv.ParseUint(s, 10, 8)
	if err != nil || d == 0 || d > uint64(MaxSearchDepth) {
		return 0, fmt.Errorf("%w: %s", engine.ErrInvalidDepth, s)
	}
	return uint8(d), nil
}
