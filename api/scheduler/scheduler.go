package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/parsa000721/records/export"
	"github.com/parsa000721/records/models"
)

// archiveTimeout bounds a single archive run
const archiveTimeout = 5 * time.Minute

// CaseLister is the read side of the case record store
type CaseLister interface {
	List() []models.CaseRecord
}

// Scheduler periodically archives the case record collection as a workbook
type Scheduler struct {
	cron  *cron.Cron
	Cases CaseLister
	Sink  ArchiveSink
	spec  string
	now   func() time.Time
}

// NewScheduler creates a new scheduler instance running the archive job on spec
func NewScheduler(cases CaseLister, sink ArchiveSink, spec string) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(time.UTC)),
		Cases: cases,
		Sink:  sink,
		spec:  spec,
		now:   time.Now,
	}
}

// Start registers the archive job and begins the scheduler
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.archive)
	if err != nil {
		zap.S().Errorw("failed to register archive job", "error", err, "schedule", s.spec)
		return fmt.Errorf("register archive job: %w", err)
	}

	s.cron.Start()
	zap.S().Infow("Archive scheduler started", "schedule", s.spec)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Archive scheduler stopped")
}

func (s *Scheduler) archive() {
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	name, err := s.RunOnce(ctx)
	if err != nil {
		zap.S().Errorw("failed to archive case records", "error", err)
		return
	}
	if name == "" {
		zap.S().Debug("No case records to archive, skipping")
		return
	}
	zap.S().Infow("Archived case records", "name", name)
}

// RunOnce writes one archive workbook. It returns "" without writing when the
// collection is empty.
func (s *Scheduler) RunOnce(ctx context.Context) (string, error) {
	recs := s.Cases.List()
	if len(recs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, recs); err != nil {
		return "", err
	}

	name := ArchiveName(s.now())
	if err := s.Sink.Put(ctx, name, buf.Bytes()); err != nil {
		return "", fmt.Errorf("store archive %s: %w", name, err)
	}
	return name, nil
}

// ArchiveName returns the object name of an archive taken at t
func ArchiveName(t time.Time) string {
	return t.UTC().Format("20060102T150405Z") + "-" + export.FileName
}
