package workflows

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-ReservationClient/internal/usecase/reservation_workflow"
)

// Config настройки сессий
type Config struct {
	Workflow   reservation_workflow.Config
	SessionTTL time.Duration // сессия без действий дольше TTL закрывается при очистке
}

// Service реестр открытых workflow бронирования.
// Каждая сессия соответствует одному открытому окну бронирования.
type Service struct {
	client  ReservationServiceClient
	clock   clock.Clock
	cfg     Config
	logger  Logger
	metrics Metrics

	mu       sync.RWMutex
	sessions map[string]*reservation_workflow.Workflow
	closed   bool
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	client ReservationServiceClient,
	clk clock.Clock,
	cfg Config,
	logger Logger,
	metrics Metrics,
) *Service {
	return &Service{
		client:   client,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		sessions: make(map[string]*reservation_workflow.Workflow),
	}
}

// Open открывает новую сессию для размещения
func (s *Service) Open(accommodationID, token string) (*reservation_workflow.Workflow, error) {
	if strings.TrimSpace(accommodationID) == "" {
		return nil, fmt.Errorf("%w: accommodation id is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrShuttingDown
	}

	id := uuid.NewString()
	wf := reservation_workflow.NewWorkflow(id, accommodationID, token, s.client, s.clock, s.cfg.Workflow, s.logger, s.metrics)
	s.sessions[id] = wf
	s.metrics.WorkflowOpened()

	s.logger.Info("Open: workflow=%s opened for accommodation=%s", id, accommodationID)
	return wf, nil
}

// Get возвращает открытую сессию
func (s *Service) Get(id string) (*reservation_workflow.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wf, ok := s.sessions[id]
	if !ok {
		return nil, ErrWorkflowNotFound
	}
	return wf, nil
}

// Close закрывает сессию и отменяет ее таймеры
func (s *Service) Close(id string) error {
	s.mu.Lock()
	wf, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrWorkflowNotFound
	}

	wf.Close()
	s.metrics.WorkflowClosed()
	s.logger.Info("Close: workflow=%s closed", id)
	return nil
}

// CloseAll закрывает все сессии; новые сессии больше не открываются
func (s *Service) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*reservation_workflow.Workflow)
	s.closed = true
	s.mu.Unlock()

	for _, wf := range sessions {
		wf.Close()
		s.metrics.WorkflowClosed()
	}

	s.logger.Info("CloseAll: closed %d workflows", len(sessions))
}

// Len количество открытых сессий
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep закрывает сессии без действий дольше SessionTTL. Возвращает число закрытых сессий.
func (s *Service) Sweep() int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}

	now := s.clock.Now()

	s.mu.Lock()
	var expired []*reservation_workflow.Workflow
	for id, wf := range s.sessions {
		if now.Sub(wf.LastActivity()) > s.cfg.SessionTTL {
			expired = append(expired, wf)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, wf := range expired {
		wf.Close()
		s.metrics.WorkflowClosed()
		s.logger.Info("Sweep: workflow=%s expired", wf.ID())
	}

	return len(expired)
}

// RunSweeper запускает периодическую очистку по расписанию cron (например, "@every 1m")
// и блокируется до отмены ctx
func (s *Service) RunSweeper(ctx context.Context, schedule string) error {
	c := cron.New(cron.WithLogger(cronLogger{s.logger}))
	if _, err := c.AddFunc(schedule, func() { s.Sweep() }); err != nil {
		return fmt.Errorf("%w: invalid sweep schedule %q: %v", ErrInvalidInput, schedule, err)
	}

	c.Start()
	s.logger.Info("RunSweeper: started with schedule %q", schedule)

	<-ctx.Done()
	<-c.Stop().Done()

	s.logger.Info("RunSweeper: stopped")
	return nil
}

// cronLogger адаптер Logger для cron
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(string, ...interface{}) {}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
