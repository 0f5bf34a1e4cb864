package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gridmind/internal/config"
	"github.com/rocketscienceinc/gridmind/internal/entity"
	"github.com/rocketscienceinc/gridmind/internal/repository"
	"github.com/rocketscienceinc/gridmind/internal/repository/storage"
	"github.com/rocketscienceinc/gridmind/internal/service"
	"github.com/rocketscienceinc/gridmind/internal/strategy"
	"github.com/rocketscienceinc/gridmind/internal/tictactoe"
	"github.com/rocketscienceinc/gridmind/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	xStrategy, oStrategy, err := buildStrategies(&conf.Game)
	if err != nil {
		return fmt.Errorf("could not build strategies: %w", err)
	}

	controller, err := tictactoe.NewGameController(xStrategy, oStrategy)
	if err != nil {
		return fmt.Errorf("could not create game controller: %w", err)
	}

	var archive service.ArchiveService
	if conf.Archive.Enabled {
		redisStorage, storageErr := storage.New(ctx, conf.Archive.Redis.GetRedisAddr())
		if storageErr != nil {
			return fmt.Errorf("could not connect to redis storage: %w", storageErr)
		}

		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		archive = service.NewArchiveService(logger, repository.NewRecordRepository(redisStorage))
	}

	log.Info("Starting game", "player_x", xStrategy.Name(), "player_o", oStrategy.Name())

	term := terminal.New(logger, controller, archive, os.Stdin, os.Stdout)
	if err = term.Run(ctx); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

// buildStrategies - resolves the configured strategy kinds for X and O.
func buildStrategies(conf *config.Game) (strategy.Strategy, strategy.Strategy, error) {
	opts := strategy.Options{MaxDepth: conf.MinimaxDepth}
	if conf.RandomSeed != 0 {
		opts.Rand = rand.New(rand.NewSource(conf.RandomSeed)) //nolint: gosec // game moves, not crypto
	}

	xStrategy, err := strategy.New(conf.PlayerX, entity.PlayerX, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("player X: %w", err)
	}

	oStrategy, err := strategy.New(conf.PlayerO, entity.PlayerO, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("player O: %w", err)
	}

	return xStrategy, oStrategy, nil
}
