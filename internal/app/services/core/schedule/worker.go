package schedule

import (
	"context"
	"edunexus-service/internal/app/config"
	"edunexus-service/internal/app/contracts"
	"edunexus-service/internal/app/models"
	"edunexus-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// EntryLoader supplies the current timetable to the audit worker without
// binding it to a concrete store.
type EntryLoader interface {
	FindAllEntries(ctx context.Context) ([]models.TimetableEntry, error)
}

// AuditWorker periodically validates the stored timetable and publishes a
// report event. It repairs nothing; detected conflicts are surfaced for an
// operator to act on.
type AuditWorker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	notifier contracts.EventNotifier
	loader   EntryLoader
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

type auditReport struct {
	EntryCount    int        `json:"entryCount"`
	ConflictCount int        `json:"conflictCount"`
	Conflicts     []Conflict `json:"conflicts,omitempty"`
}

func NewAuditWorker(log *zap.Logger, cfg *config.InternalConfig, locker contracts.LockerService, notifier contracts.EventNotifier, loader EntryLoader) *AuditWorker {
	return &AuditWorker{log: log, cfg: cfg, locker: locker, notifier: notifier, loader: loader}
}

// Start schedules the audit with the configured cron spec, falling back to
// @daily when the spec does not parse.
func (w *AuditWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.AuditCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("schedule.AuditWorker: invalid cron spec, falling back to @daily", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron scheduler to drain.
func (w *AuditWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *AuditWorker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.LockKeyAuditLeader, ttl)
	if err != nil {
		w.log.Error("schedule.AuditWorker: leader lock error", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Debug("schedule.AuditWorker: another instance holds the leader lock")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.Background(), constvars.LockKeyAuditLeader, lockValue); err != nil {
			w.log.Warn("schedule.AuditWorker: failed to release leader lock", zap.Error(err))
		}
	}()

	entries, err := w.loader.FindAllEntries(ctx)
	if err != nil {
		w.log.Error("schedule.AuditWorker: failed to load timetable", zap.Error(err))
		return
	}
	conflicts := NewIndex(entries).Validate()

	report := auditReport{
		EntryCount:    len(entries),
		ConflictCount: len(conflicts),
		Conflicts:     conflicts,
	}
	if len(conflicts) > 0 {
		w.log.Warn("schedule.AuditWorker: timetable integrity violations found",
			zap.Int("conflict_count", len(conflicts)),
		)
	}
	if err := w.notifier.Publish(ctx, constvars.EventTimetableAudit, report); err != nil {
		w.log.Warn("schedule.AuditWorker: failed to publish audit report", zap.Error(err))
	}
}
