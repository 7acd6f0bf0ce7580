package repository

import (
	"context"

	"gorm.io/gorm"

	"datavision/internal/model"
)

// EndpointCount is one row of the endpoint frequency aggregation.
type EndpointCount struct {
	Endpoint string `json:"endpoint"`
	Count    int64  `json:"count"`
}

// LogRepository defines persistence operations for audit entries.
// The store is append-only: there is no update or delete.
type LogRepository interface {
	Create(ctx context.Context, entry *model.RequestLog) error
	ListByUser(ctx context.Context, userID uint) ([]model.RequestLog, error)
	ListAll(ctx context.Context) ([]model.RequestLog, error)
	CountByEndpoint(ctx context.Context) ([]EndpointCount, error)
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository builds a GORM-backed repository.
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, entry *model.RequestLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *logRepository) ListByUser(ctx context.Context, userID uint) ([]model.RequestLog, error) {
	var entries []model.RequestLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *logRepository) ListAll(ctx context.Context) ([]model.RequestLog, error) {
	var entries []model.RequestLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *logRepository) CountByEndpoint(ctx context.Context) ([]EndpointCount, error) {
	var counts []EndpointCount
	err := r.db.WithContext(ctx).
		Model(&model.RequestLog{}).
		Select("endpoint, COUNT(*) AS count").
		Group("endpoint").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
