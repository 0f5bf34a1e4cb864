package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/gridmind/internal/apperror"
	"github.com/rocketscienceinc/gridmind/internal/entity"
	"github.com/rocketscienceinc/gridmind/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, xKind, oKind string) *GameController {
	t.Helper()

	xStrategy, err := strategy.New(xKind, entity.PlayerX, strategy.Options{})
	require.NoError(t, err)
	oStrategy, err := strategy.New(oKind, entity.PlayerO, strategy.Options{})
	require.NoError(t, err)

	controller, err := NewGameController(xStrategy, oStrategy)
	require.NoError(t, err)

	return controller
}

func TestNewGameController(t *testing.T) {
	t.Run("Rejects a strategy bound to the wrong mark", func(t *testing.T) {
		// Given: two strategies both carrying O
		oStrategy, err := strategy.New(strategy.KindRandom, entity.PlayerO, strategy.Options{})
		require.NoError(t, err)

		// When: wiring them as X and O
		controller, err := NewGameController(oStrategy, oStrategy)

		// Then: construction fails
		require.ErrorIs(t, err, ErrMarkMismatch)
		assert.Nil(t, controller)
	})
}

func TestGameController_AdvanceTurn(t *testing.T) {
	t.Run("Plays computed strategies to completion", func(t *testing.T) {
		// Given: two minimax players
		controller := newController(t, strategy.KindMinimax, strategy.KindMinimax)

		// When: advancing until the game ends
		for !controller.IsFinished() {
			_, err := controller.AdvanceTurn()
			require.NoError(t, err)
		}

		// Then: perfect play drew, and the log holds all 9 plies
		state := controller.State()
		assert.Equal(t, entity.StatusDraw, state.Status)
		assert.Equal(t, 9, state.TurnNumber)
		_, ok := controller.Winner()
		assert.False(t, ok)
	})

	t.Run("Propagates the human strategy's refusal", func(t *testing.T) {
		// Given: a human-bound X
		controller := newController(t, strategy.KindHuman, strategy.KindMinimax)

		// When: advancing automatically
		_, err := controller.AdvanceTurn()

		// Then: the caller bug surfaces as ErrHumanMoveRequired
		require.ErrorIs(t, err, apperror.ErrHumanMoveRequired)
	})

	t.Run("Rejects advances on a finished game", func(t *testing.T) {
		// Given: a finished game
		controller := newController(t, strategy.KindMinimax, strategy.KindMinimax)
		for !controller.IsFinished() {
			_, err := controller.AdvanceTurn()
			require.NoError(t, err)
		}

		// When: advancing once more
		_, err := controller.AdvanceTurn()

		// Then: the controller refuses safely
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameController_ApplyPosition(t *testing.T) {
	// Given: a human vs human game
	controller := newController(t, strategy.KindHuman, strategy.KindHuman)

	// When: applying a legal external move
	applied := controller.ApplyPosition(entity.Position{Row: 0, Col: 0})

	// Then: it lands and the turn passes to O
	assert.True(t, applied)
	assert.Equal(t, entity.PlayerO, controller.State().CurrentPlayer)

	// When: targeting the occupied cell again
	applied = controller.ApplyPosition(entity.Position{Row: 0, Col: 0})

	// Then: the move is rejected without side effects
	assert.False(t, applied)
	assert.Equal(t, entity.PlayerO, controller.State().CurrentPlayer)
	assert.Equal(t, 1, controller.State().TurnNumber)
}

func TestGameController_State(t *testing.T) {
	// Given: a game with one applied move
	controller := newController(t, strategy.KindHuman, strategy.KindHuman)
	require.True(t, controller.ApplyPosition(entity.Position{Row: 1, Col: 1}))

	// When: reading two snapshots and mutating the first
	first := controller.State()
	first.Board.Place(entity.Position{Row: 0, Col: 0}, entity.PlayerO)
	first.Moves[0].Player = entity.PlayerO
	second := controller.State()

	// Then: the mutation never reached the controller, and reads without
	// an intervening move stay equal by value
	assert.Equal(t, entity.EmptyCell, second.Board.At(entity.Position{Row: 0, Col: 0}))
	assert.Equal(t, entity.PlayerX, second.Moves[0].Player)
	assert.Equal(t, second, controller.State())
}

func TestGameController_BestMoves(t *testing.T) {
	// Given: X can win at C1, must otherwise block O's middle row
	controller := newController(t, strategy.KindHuman, strategy.KindHuman)
	for _, pos := range []entity.Position{
		{Row: 0, Col: 0}, {Row: 1, Col: 0},
		{Row: 0, Col: 1}, {Row: 1, Col: 1},
	} {
		require.True(t, controller.ApplyPosition(pos))
	}

	// When: ranking the moves
	ranked := controller.BestMoves()

	// Then: the winning move leads, the win-block follows, ties stay row-major
	require.Len(t, ranked, 5)
	assert.Equal(t, entity.Position{Row: 0, Col: 2}, ranked[0].Position)
	assert.Equal(t, 1, ranked[0].WinInTurns)
	assert.Equal(t, entity.Position{Row: 1, Col: 2}, ranked[1].Position)
	assert.True(t, ranked[1].BlocksOpponentWin)
}

func TestGameController_History(t *testing.T) {
	// Given: three applied moves
	controller := newController(t, strategy.KindHuman, strategy.KindHuman)
	for _, pos := range []entity.Position{
		{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2},
	} {
		require.True(t, controller.ApplyPosition(pos))
	}

	// When: formatting the history
	history := controller.History()

	// Then: the log reads chronologically in grid references
	assert.Equal(t, "X: A1, O: B2, X: C3", history)
}

func TestGameController_Reset(t *testing.T) {
	// Given: a game in progress
	controller := newController(t, strategy.KindHuman, strategy.KindHuman)
	require.True(t, controller.ApplyPosition(entity.Position{Row: 0, Col: 0}))

	// When: resetting
	controller.Reset()

	// Then: the board is empty with X to move and 9 legal targets
	state := controller.State()
	assert.True(t, state.Board.IsEmpty())
	assert.Equal(t, entity.PlayerX, state.CurrentPlayer)
	assert.Len(t, controller.AvailablePositions(), 9)
	assert.Empty(t, controller.History())
}
