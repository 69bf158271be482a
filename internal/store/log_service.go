package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/nbekzhan/liftlog/internal/models"
)

// CacheSavedLog records a workout log the server accepted, keyed by the
// server-assigned log id. The session id ties the cached row back to the
// client session that produced it. Caching the same log twice is a no-op.
func CacheSavedLog(logID, sessionID string, payload models.WorkoutLogCreate, completedAt time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling log payload: %w", err)
	}

	saved := models.SavedLog{
		LogID:           logID,
		SessionID:       sessionID,
		PlanID:          payload.PlanID,
		Day:             payload.Day,
		CompletedAt:     completedAt,
		SessionRPE:      payload.SessionRPE,
		DurationMinutes: payload.DurationMinutes,
		Payload:         string(data),
	}
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "log_id"}},
		DoNothing: true,
	}).Create(&saved).Error
}

// RecentSavedLogs returns the most recently completed cached logs, newest first
func RecentSavedLogs(limit int) ([]models.SavedLog, error) {
	var logs []models.SavedLog
	err := DB.Order("completed_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// SavedLogPayload decodes the cached wire payload of a saved log
func SavedLogPayload(saved *models.SavedLog) (models.WorkoutLogCreate, error) {
	var payload models.WorkoutLogCreate
	if err := json.Unmarshal([]byte(saved.Payload), &payload); err != nil {
		return models.WorkoutLogCreate{}, fmt.Errorf("decoding cached log %s: %w", saved.LogID, err)
	}
	return payload, nil
}
