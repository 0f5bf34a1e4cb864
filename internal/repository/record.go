package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gridmind/internal/entity"
)

var ErrRecordNotFound = errors.New("game record not found")

// recentKey keeps the newest record IDs; the list is capped so the
// archive does not grow without bound.
const (
	recentKey   = "records:recent"
	recentLimit = 100
)

type RecordRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	Recent(ctx context.Context, limit int) ([]*entity.GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbRecord struct {
	client *redis.Client
}

func NewRecordRepository(client *redis.Client) RecordRepository {
	return &dbRecord{
		client: client,
	}
}

func (that *dbRecord) Save(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	recordKey := "record:" + record.ID
	if err = that.client.Set(ctx, recordKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set record: %w", err)
	}

	if err = that.client.LPush(ctx, recentKey, record.ID).Err(); err != nil {
		return fmt.Errorf("failed to push record id: %w", err)
	}

	if err = that.client.LTrim(ctx, recentKey, 0, recentLimit-1).Err(); err != nil {
		return fmt.Errorf("failed to trim recent records: %w", err)
	}

	return nil
}

func (that *dbRecord) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	recordKey := "record:" + id

	response, err := that.client.Get(ctx, recordKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.GameRecord{}, ErrRecordNotFound
	}

	if err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to get record by id: %w", err)
	}

	var existingRecord entity.GameRecord
	if err = json.Unmarshal([]byte(response), &existingRecord); err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &existingRecord, nil
}

func (that *dbRecord) Recent(ctx context.Context, limit int) ([]*entity.GameRecord, error) {
	if limit <= 0 || limit > recentLimit {
		limit = recentLimit
	}

	ids, err := that.client.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent record ids: %w", err)
	}

	records := make([]*entity.GameRecord, 0, len(ids))
	for _, id := range ids {
		record, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (that *dbRecord) DeleteByID(ctx context.Context, id string) error {
	recordKey := "record:" + id

	if err := that.client.Del(ctx, recordKey).Err(); err != nil {
		return fmt.Errorf("failed to delete record by id: %w", err)
	}

	if err := that.client.LRem(ctx, recentKey, 0, id).Err(); err != nil {
		return fmt.Errorf("failed to remove record id from recent list: %w", err)
	}

	return nil
}
