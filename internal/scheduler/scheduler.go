package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Job выполняется планировщиком по расписанию
type Job func(ctx context.Context) error

// Scheduler управляет запланированными задачами
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// New создает новый планировщик (время в UTC)
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Add регистрирует задачу. Пустое расписание отключает задачу.
func (s *Scheduler) Add(name, spec string, job Job) error {
	if spec == "" {
		log.Printf("⚠️ Job %s has no schedule, skipping", name)
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() {
		log.Printf("🕘 Triggered job %s", name)
		if err := job(s.ctx); err != nil {
			log.Printf("❌ Job %s failed: %v", name, err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %s (%q): %w", name, spec, err)
	}
	return nil
}

// Start запускает планировщик
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("📅 Scheduler started with %d jobs", len(s.cron.Entries()))
}

// Stop останавливает планировщик и дожидается выполняющихся задач
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

// IsRunning проверяет, есть ли зарегистрированные задачи
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
