package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"

	"VelocityWatch/internal/collector"
	"VelocityWatch/internal/exporter"
	"VelocityWatch/internal/notifier"
	"VelocityWatch/internal/pipeline"
	"VelocityWatch/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the daily analysis task and Telegram commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	ExportDir string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, exportDir string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		ExportDir: exportDir,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily analysis task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Printf("[INFO] running daily velocity analysis for %s", s.Collector.Symbol)
	report, err := s.Collector.Analyze()
	if err != nil {
		log.Printf("[ERROR] daily analysis: %v", err)
		if errors.Is(err, pipeline.ErrInsufficientHistory) {
			s.trySend(fmt.Sprintf("❌ %s: 데이터 기간 부족 (1200일 이상 필요)", s.Collector.Symbol))
		} else {
			s.trySend(fmt.Sprintf("❌ 데이터 수집 실패: %v", err))
		}
		return
	}

	s.trySend(notifier.FormatVelocityReport(report))

	if err := s.Recorder.RecordSnapshot(&recorder.Snapshot{
		Symbol: report.Symbol,
		Record: report.Latest,
		Zone:   report.Zone,
	}); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
}

func (s *Scheduler) exportTask() string {
	report, err := s.Collector.Analyze()
	if err != nil {
		log.Printf("[ERROR] export analysis: %v", err)
		return fmt.Sprintf("❌ 내보내기 실패: %v", err)
	}
	path, err := exporter.ExportFile(s.ExportDir, report.Symbol, report.Records)
	if err != nil {
		log.Printf("[ERROR] export xlsx: %v", err)
		return fmt.Sprintf("❌ 엑셀 저장 실패: %v", err)
	}
	log.Printf("[INFO] exported %d records to %s", len(report.Records), path)
	return fmt.Sprintf("📥 엑셀 저장 완료: %s (%d행)", path, len(report.Records))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "현재 속도", "/velocity":
		s.dailyTask()
		return ""
	case "구간 기준", "/zones":
		return notifier.FormatZoneTable()
	case "엑셀 내보내기", "/export":
		return s.exportTask()
	default:
		return "사용 가능한 명령:\n• 현재 속도 (/velocity)\n• 구간 기준 (/zones)\n• 엑셀 내보내기 (/export)"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
