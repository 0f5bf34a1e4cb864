// Package terminal is the text front end: it renders the board, prompts
// humans for grid references and drives automatic plies for computed
// strategies.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/gridmind/internal/entity"
	"github.com/rocketscienceinc/gridmind/internal/grid"
	"github.com/rocketscienceinc/gridmind/internal/service"
	"github.com/rocketscienceinc/gridmind/internal/strategy"
	"github.com/rocketscienceinc/gridmind/internal/tictactoe"
)

type Terminal struct {
	logger     *slog.Logger
	controller *tictactoe.GameController
	archive    service.ArchiveService // nil when archiving is disabled

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, controller *tictactoe.GameController, archive service.ArchiveService, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger:     logger.With("component", "terminal"),
		controller: controller,
		archive:    archive,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run - plays one game to completion, then prints the outcome and
// archives the record when an archive is wired.
func (that *Terminal) Run(ctx context.Context) error {
	for !that.controller.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		that.renderBoard()

		state := that.controller.State()
		current := that.controller.StrategyFor(state.CurrentPlayer)

		if current.Kind() == strategy.KindHuman {
			if err := that.promptHumanMove(current); err != nil {
				return err
			}
			continue
		}

		pos, err := that.controller.AdvanceTurn()
		if err != nil {
			return fmt.Errorf("failed to advance turn: %w", err)
		}

		that.logger.Debug("ply applied", "strategy", current.Name(), "mark", current.Mark(), "position", grid.FormatPosition(pos))
		fmt.Fprintf(that.out, "%s (%s) plays %s\n", current.Name(), current.Mark(), grid.FormatPosition(pos))
	}

	that.renderBoard()
	that.printOutcome()

	if that.archive != nil {
		record, err := that.archive.ArchiveGame(ctx, that.controller)
		if err != nil {
			return fmt.Errorf("failed to archive game: %w", err)
		}
		fmt.Fprintf(that.out, "archived as %s\n", record.ID)
	}

	return nil
}

// promptHumanMove - reads grid references until one names a legal move.
// Malformed input and occupied cells both just re-prompt.
func (that *Terminal) promptHumanMove(current strategy.Strategy) error {
	for {
		fmt.Fprintf(that.out, "%s to move (e.g. B2): ", current.Mark())

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return io.ErrUnexpectedEOF
		}

		pos, ok := grid.ParseReference(strings.TrimSpace(that.in.Text()))
		if !ok {
			fmt.Fprintln(that.out, "please enter a reference like A1, B2 or C3")
			continue
		}

		if !that.controller.ApplyPosition(pos) {
			fmt.Fprintln(that.out, "that cell is taken, try another one")
			continue
		}

		return nil
	}
}

func (that *Terminal) renderBoard() {
	state := that.controller.State()

	fmt.Fprintln(that.out, "   A  B  C")
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			mark := state.Board.At(entity.Position{Row: row, Col: col})
			if mark == entity.EmptyCell {
				mark = "."
			}
			cells = append(cells, string(mark))
		}
		fmt.Fprintf(that.out, "%d  %s\n", row+1, strings.Join(cells, "  "))
	}
}

func (that *Terminal) printOutcome() {
	if winner, ok := that.controller.Winner(); ok {
		winning := that.controller.StrategyFor(winner)
		fmt.Fprintf(that.out, "%s (%s) wins!\n", winning.Name(), winner)
	} else {
		fmt.Fprintln(that.out, "it's a draw")
	}

	if history := that.controller.History(); history != "" {
		fmt.Fprintf(that.out, "moves: %s\n", history)
	}
}
