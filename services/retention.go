package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"abi-fashion-backend/internal/logger"
)

// RetentionService runs the daily transcript prune. It is maintenance
// only; visitors never trigger it.
type RetentionService struct {
	scheduler   *gocron.Scheduler
	transcripts *TranscriptService
	days        int
}

func NewRetentionService(transcripts *TranscriptService, retentionDays int) *RetentionService {
	s := gocron.NewScheduler(time.UTC)
	s.TagsUnique()

	return &RetentionService{
		scheduler:   s,
		transcripts: transcripts,
		days:        retentionDays,
	}
}

// Start schedules the sweep once a day and runs the scheduler async.
func (r *RetentionService) Start() error {
	_, err := r.scheduler.Every(1).Day().At("03:00").Tag("chat-retention").Do(r.sweep)
	if err != nil {
		return err
	}
	r.scheduler.StartAsync()
	logger.Info("Chat retention sweep scheduled", "retention_days", r.days)
	return nil
}

// Stop stops the scheduler.
func (r *RetentionService) Stop() {
	r.scheduler.Stop()
}

func (r *RetentionService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	deleted, err := r.transcripts.PruneOlderThan(ctx, r.days)
	if err != nil {
		logger.Error("Chat retention sweep failed", "error", err)
		return
	}
	logger.Info("Chat retention sweep finished", "deleted", deleted, "retention_days", r.days)
}
