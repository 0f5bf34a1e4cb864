package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridmind/internal/entity"
	"github.com/rocketscienceinc/gridmind/internal/repository"
	"github.com/rocketscienceinc/gridmind/internal/tictactoe"
)

var ErrGameNotFinished = errors.New("game is not finished yet")

// ArchiveService - persists finished games as records.
type ArchiveService interface {
	ArchiveGame(ctx context.Context, controller *tictactoe.GameController) (*entity.GameRecord, error)
	RecentRecords(ctx context.Context, limit int) ([]*entity.GameRecord, error)
}

type archiveService struct {
	logger  *slog.Logger
	records repository.RecordRepository
}

func NewArchiveService(logger *slog.Logger, records repository.RecordRepository) ArchiveService {
	return &archiveService{
		logger:  logger.With("component", "archive"),
		records: records,
	}
}

func (that *archiveService) ArchiveGame(ctx context.Context, controller *tictactoe.GameController) (*entity.GameRecord, error) {
	state := controller.State()
	if !state.IsFinished() {
		return nil, ErrGameNotFinished
	}

	record := &entity.GameRecord{
		ID:         uuid.NewString(),
		PlayerX:    controller.StrategyFor(entity.PlayerX).Name(),
		PlayerO:    controller.StrategyFor(entity.PlayerO).Name(),
		Status:     state.Status,
		Winner:     state.Winner,
		History:    controller.History(),
		Turns:      state.TurnNumber,
		FinishedAt: time.Now(),
	}

	if err := that.records.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save game record: %w", err)
	}

	that.logger.Info("game archived", "record_id", record.ID, "status", record.Status, "winner", record.Winner)

	return record, nil
}

func (that *archiveService) RecentRecords(ctx context.Context, limit int) ([]*entity.GameRecord, error) {
	records, err := that.records.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent records: %w", err)
	}
	return records, nil
}
