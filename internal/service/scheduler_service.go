package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerService runs reminder jobs on cron schedules.
type SchedulerService struct {
	cron *cron.Cron
}

func NewSchedulerService(loc *time.Location) *SchedulerService {
	return &SchedulerService{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

// Schedule registers job every interval and, when at is set, daily at the
// HH:MM time. It returns how many schedules were registered.
func (s *SchedulerService) Schedule(interval time.Duration, at string, job func()) (int, error) {
	n := 0
	if interval > 0 {
		if _, err := s.ScheduleInterval(interval, job); err != nil {
			return n, err
		}
		n++
	}
	if at != "" {
		if _, err := s.ScheduleDaily(at, job); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// ScheduleDaily registers a daily job at the given HH:MM time string.
func (s *SchedulerService) ScheduleDaily(timeStr string, job func()) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, job)
}

// ScheduleInterval registers a job every interval, rounded down to whole seconds.
func (s *SchedulerService) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		return 0, fmt.Errorf("interval must be at least one second, got %s", interval)
	}
	return s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), job)
}

func (s *SchedulerService) Len() int {
	return len(s.cron.Entries())
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs.
func (s *SchedulerService) Stop() {
	<-s.cron.Stop().Done()
}

// buildDailySpec turns a REMINDER_TIME value into a seconds-first cron spec.
func buildDailySpec(clock string) (string, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return "", fmt.Errorf("reminder time %q: want HH:MM", clock)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("reminder time %q: hour must be 00-23", clock)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("reminder time %q: minute must be 00-59", clock)
	}
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
