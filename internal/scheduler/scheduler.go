package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the analysis pipeline on a cron schedule. The job itself
// is injected so the scheduler stays free of pipeline wiring.
type Scheduler struct {
	cron *cron.Cron
	job  func() error
}

// New creates a scheduler around the given job. Cron specs use the
// six-field form with a leading seconds field.
func New(job func() error) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		job:  job,
	}
}

// Register adds the analysis job under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runJob); err != nil {
		return fmt.Errorf("register analysis job: %w", err)
	}
	return nil
}

// Start begins firing scheduled runs.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the scheduler; in-flight runs complete.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the job immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.runJob()
}

func (s *Scheduler) runJob() {
	log.Println("[INFO] running scheduled analysis")
	if err := s.job(); err != nil {
		log.Printf("[ERROR] scheduled analysis: %v", err)
	}
}
