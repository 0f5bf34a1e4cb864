package strategy

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/gridmind/internal/apperror"
	"github.com/rocketscienceinc/gridmind/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playOut - runs a full game between the two strategies and returns the
// final state.
func playOut(t *testing.T, xStrategy, oStrategy Strategy) *entity.GameState {
	t.Helper()

	game := entity.NewGameState()
	for game.IsPlaying() {
		current := xStrategy
		if game.CurrentPlayer == entity.PlayerO {
			current = oStrategy
		}

		pos, err := current.Decide(game)
		require.NoError(t, err)
		require.NoError(t, game.ApplyMove(pos))
	}

	return game
}

func TestMinimax_Decide(t *testing.T) {
	minimax := NewMinimax(entity.PlayerX, 0)

	t.Run("Opens with the center on an empty board", func(t *testing.T) {
		// Given: a fresh game
		state := entity.NewGameState()

		// When: deciding
		pos, err := minimax.Decide(state)

		// Then: the opening shortcut picks the center without searching
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 1, Col: 1}, pos)
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		// Given: X two in a row on top, O in the left column
		state := &entity.GameState{
			Board: entity.Board{
				entity.PlayerX, entity.PlayerX, entity.EmptyCell,
				entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
				entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
			},
			CurrentPlayer: entity.PlayerX,
			Status:        entity.StatusPlaying,
		}

		// When: deciding
		pos, err := minimax.Decide(state)

		// Then: it completes the row
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 0, Col: 2}, pos)
	})

	t.Run("Blocks the opponent's winning threat", func(t *testing.T) {
		// Given: O threatens the top row, X cannot win this ply
		state := &entity.GameState{
			Board: entity.Board{
				entity.PlayerO, entity.PlayerO, entity.EmptyCell,
				entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
				entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
			},
			CurrentPlayer: entity.PlayerX,
			Status:        entity.StatusPlaying,
		}

		// When: deciding
		pos, err := minimax.Decide(state)

		// Then: the only non-losing move closes O's row
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 0, Col: 2}, pos)
	})

	t.Run("Fails with ErrNoLegalMoves on a full board", func(t *testing.T) {
		// Given: a full board
		state := &entity.GameState{
			Board: entity.Board{
				entity.PlayerX, entity.PlayerO, entity.PlayerX,
				entity.PlayerO, entity.PlayerX, entity.PlayerO,
				entity.PlayerO, entity.PlayerX, entity.PlayerO,
			},
			CurrentPlayer: entity.PlayerX,
			Status:        entity.StatusDraw,
		}

		// When: deciding
		_, err := minimax.Decide(state)

		// Then: the strategy fails loudly
		require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
	})
}

func TestMinimax_SelfPlayDraws(t *testing.T) {
	// Given: two full-depth minimax players
	xStrategy := NewMinimax(entity.PlayerX, 0)
	oStrategy := NewMinimax(entity.PlayerO, 0)

	// When: they play a complete game
	game := playOut(t, xStrategy, oStrategy)

	// Then: perfect play from both sides is always a draw
	assert.Equal(t, entity.StatusDraw, game.Status)
	assert.Equal(t, entity.EmptyCell, game.Winner)
}

func TestMinimax_NeverLosesToRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping self-play trials in short mode")
	}

	t.Run("As X against a random O", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42)) //nolint: gosec // fixed test seed

		for i := 0; i < 100; i++ {
			// When: minimax X plays a random O
			game := playOut(t, NewMinimax(entity.PlayerX, 0), NewRandom(entity.PlayerO, rng))

			// Then: the random player never wins
			assert.NotEqual(t, entity.PlayerO, game.Winner, "game %d: %+v", i, game.Board)
		}
	})

	t.Run("As O against a random X", func(t *testing.T) {
		rng := rand.New(rand.NewSource(43)) //nolint: gosec // fixed test seed

		for i := 0; i < 100; i++ {
			// When: minimax O plays a random X
			game := playOut(t, NewRandom(entity.PlayerX, rng), NewMinimax(entity.PlayerO, 0))

			// Then: the random player never wins
			assert.NotEqual(t, entity.PlayerX, game.Winner, "game %d: %+v", i, game.Board)
		}
	})
}
