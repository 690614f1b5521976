package services

import (
	"context"
	"encoding/json"

	"github.com/ahmedellithy99/dukkan-backend-sub000/filters"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ActivityLogService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewActivityLogService(db *gorm.DB, log *zap.Logger) *ActivityLogService {
	return &ActivityLogService{db: db, log: log}
}

// ActivityEntry describes one action to record.
type ActivityEntry struct {
	Actor        Actor
	Action       string // created_shop, deleted_category, ...
	ResourceType string
	ResourceID   string
	Metadata     map[string]any
	Status       string
	ErrorMessage string
	IPAddress    string
	UserAgent    string
}

// Record stores entry. Failures are logged and swallowed so they never fail
// the request being audited.
func (s *ActivityLogService) Record(ctx context.Context, entry ActivityEntry) {
	if entry.Actor.ID == uuid.Nil {
		s.log.Warn("activity log without actor", zap.String("action", entry.Action))
		return
	}

	var metadata []byte
	if entry.Metadata != nil {
		data, err := json.Marshal(entry.Metadata)
		if err != nil {
			s.log.Warn("failed to marshal activity metadata", zap.Error(err))
			data = []byte("{}")
		}
		metadata = data
	}

	status := entry.Status
	if status == "" {
		status = models.StatusSuccess
	}

	record := models.ActivityLog{
		UserID:       entry.Actor.ID,
		UserRole:     entry.Actor.Role,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Metadata:     metadata,
		Status:       status,
		ErrorMessage: entry.ErrorMessage,
		IPAddress:    entry.IPAddress,
		UserAgent:    entry.UserAgent,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		s.log.Error("failed to create activity log", zap.Error(err), zap.String("action", entry.Action))
		return
	}
	s.log.Debug("activity recorded",
		zap.String("action", entry.Action),
		zap.String("resource_type", entry.ResourceType),
		zap.String("resource_id", entry.ResourceID),
		zap.String("status", status),
	)
}

func (s *ActivityLogService) List(ctx context.Context, params filters.Params, page utils.PageRequest) ([]models.ActivityLogResponse, int64, error) {
	logs, total, err := listResource[models.ActivityLog](ctx, s.db, filters.ActivityLogs, params, page)
	if err != nil {
		return nil, 0, err
	}
	out := make([]models.ActivityLogResponse, len(logs))
	for i := range logs {
		out[i] = logs[i].ToResponse()
	}
	return out, total, nil
}
