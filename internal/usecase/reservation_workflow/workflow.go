package reservation_workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
	"github.com/m04kA/SMC-ReservationClient/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ReservationClient/pkg/timerscope"
)

// Workflow workflow бронирования одного размещения.
// Потоки бронирования и проверки доступности независимы: у каждого свое состояние и свои таймеры сброса.
type Workflow struct {
	id              string
	accommodationID string
	token           string

	client  ReservationServiceClient
	clock   clock.Clock
	timers  *timerscope.Scope
	cfg     Config
	logger  Logger
	metrics Metrics

	mu           sync.Mutex
	reservation  *flow
	availability *flow
	closed       bool
	lastActivity time.Time
}

// NewWorkflow создает workflow в состоянии idle
func NewWorkflow(
	id string,
	accommodationID string,
	token string,
	client ReservationServiceClient,
	clk clock.Clock,
	cfg Config,
	logger Logger,
	metrics Metrics,
) *Workflow {
	now := clk.Now()
	return &Workflow{
		id:              id,
		accommodationID: accommodationID,
		token:           token,
		client:          client,
		clock:           clk,
		timers:          timerscope.New(clk),
		cfg:             cfg.withDefaults(),
		logger:          logger,
		metrics:         metrics,
		reservation:     newFlow(flowReservation, now),
		availability:    newFlow(flowAvailability, now),
		lastActivity:    now,
	}
}

func newFlow(name string, now time.Time) *flow {
	return &flow{
		name:  name,
		state: domain.FlowState{Phase: domain.PhaseIdle, UpdatedAt: now},
	}
}

// ID идентификатор workflow
func (w *Workflow) ID() string {
	return w.id
}

// AccommodationID размещение, к которому привязан workflow
func (w *Workflow) AccommodationID() string {
	return w.accommodationID
}

// Submit проверяет форму и отправляет заявку на бронирование.
//
// Возвращает итоговое состояние потока бронирования. Ошибка:
// *ValidationError (ErrCheckInTimeInvalid, ErrGuestCountInvalid, ErrInvalidDate) без сетевого запроса,
// ErrRemote при отказе сервиса, ErrSuperseded если ответ вытеснен новой отправкой, ErrClosed после Close.
func (w *Workflow) Submit(ctx context.Context, form domain.ReservationForm) (domain.FlowState, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return domain.FlowState{}, ErrClosed
	}

	f := w.reservation
	gen := w.begin(f)

	w.logger.Info("SubmitReservation: workflow=%s, accommodation=%s, check_in=%q, check_out=%q",
		w.id, w.accommodationID, form.CheckInDate, form.CheckOutDate)

	if err := validate(form.CheckInTime, form.GuestCount); err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			w.mu.Unlock()
			return domain.FlowState{}, fmt.Errorf("validate form: %w", err)
		}
		state := w.invalid(f, verr)
		w.mu.Unlock()
		w.logger.Warn("SubmitReservation: workflow=%s validation failed: %v", w.id, verr)
		return state, verr
	}

	checkIn, checkOut, verr := w.normalizeDates(form.CheckInDate, form.CheckOutDate)
	if verr != nil {
		state := w.invalid(f, verr)
		w.mu.Unlock()
		w.logger.Warn("SubmitReservation: workflow=%s invalid dates: %v", w.id, verr)
		return state, verr
	}

	req := domain.ReservationRequest{
		AccommodationID: w.accommodationID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		GuestCount:      *form.GuestCount,
	}
	w.transition(f, domain.FlowState{Phase: domain.PhaseSubmitting})
	w.mu.Unlock()

	conf, err := w.client.CreateReservation(ctx, w.token, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if stale := w.stale(f, gen); stale != nil {
		w.logger.Warn("SubmitReservation: workflow=%s dropped late response: %v", w.id, stale)
		return f.state, stale
	}

	if err != nil {
		state := w.fail(f, gen, err)
		w.logger.Warn("SubmitReservation: workflow=%s failed: %v", w.id, err)
		return state, fmt.Errorf("%w: %w", ErrRemote, err)
	}

	w.logger.Info("SubmitReservation: workflow=%s reserved, id=%q", w.id, conf.ID)
	return w.succeed(f, gen, MessageReserved), nil
}

// CheckAvailability проверяет, свободны ли даты. Не влияет на поток бронирования.
func (w *Workflow) CheckAvailability(ctx context.Context, checkInDate, checkOutDate string) (domain.FlowState, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return domain.FlowState{}, ErrClosed
	}

	f := w.availability
	gen := w.begin(f)

	w.logger.Info("CheckAvailability: workflow=%s, accommodation=%s, check_in=%q, check_out=%q",
		w.id, w.accommodationID, checkInDate, checkOutDate)

	checkIn, checkOut, verr := w.normalizeDates(checkInDate, checkOutDate)
	if verr != nil {
		state := w.invalid(f, verr)
		w.mu.Unlock()
		w.logger.Warn("CheckAvailability: workflow=%s invalid dates: %v", w.id, verr)
		return state, verr
	}

	query := domain.AvailabilityQuery{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}
	w.transition(f, domain.FlowState{Phase: domain.PhaseSubmitting})
	w.mu.Unlock()

	res, err := w.client.CheckAvailability(ctx, w.token, w.accommodationID, query)

	w.mu.Lock()
	defer w.mu.Unlock()

	if stale := w.stale(f, gen); stale != nil {
		w.logger.Warn("CheckAvailability: workflow=%s dropped late response: %v", w.id, stale)
		return f.state, stale
	}

	if err != nil {
		state := w.fail(f, gen, err)
		w.logger.Warn("CheckAvailability: workflow=%s failed: %v", w.id, err)
		return state, fmt.Errorf("%w: %w", ErrRemote, err)
	}

	msg := MessageDatesAvailable
	if res != nil && res.Message != "" {
		msg = res.Message
	}

	return w.succeed(f, gen, msg), nil
}

// Snapshot текущее состояние обоих потоков
func (w *Workflow) Snapshot() domain.WorkflowSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return domain.WorkflowSnapshot{
		ID:              w.id,
		AccommodationID: w.accommodationID,
		Reservation:     copyState(w.reservation.state),
		Availability:    copyState(w.availability.state),
		Closed:          w.closed,
	}
}

// LastActivity время последнего действия пользователя
func (w *Workflow) LastActivity() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastActivity
}

// Close отменяет все таймеры сброса; ответы, пришедшие позже, отбрасываются.
// Повторный вызов безопасен.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	w.timers.Close()
	w.reservation.reset = nil
	w.availability.reset = nil

	w.logger.Info("Workflow: workflow=%s closed", w.id)
}

// begin начинает новую операцию потока: отменяет отложенный сброс и вытесняет предыдущую операцию.
// Вызывается под w.mu.
func (w *Workflow) begin(f *flow) uint64 {
	f.generation++
	f.reset.Cancel()
	f.reset = nil
	w.lastActivity = w.clock.Now()
	w.transition(f, domain.FlowState{Phase: domain.PhaseValidating})
	return f.generation
}

// stale проверяет, актуален ли еще ответ. Вызывается под w.mu.
func (w *Workflow) stale(f *flow, gen uint64) error {
	if w.closed {
		return ErrClosed
	}
	if f.generation != gen {
		return ErrSuperseded
	}
	return nil
}

func (w *Workflow) invalid(f *flow, verr *ValidationError) domain.FlowState {
	w.transition(f, domain.FlowState{
		Phase:      domain.PhaseInvalid,
		Message:    violationMessage(verr.Violations),
		Violations: verr.Violations,
	})
	return copyState(f.state)
}

func (w *Workflow) succeed(f *flow, gen uint64, msg string) domain.FlowState {
	w.transition(f, domain.FlowState{Phase: domain.PhaseSucceeded, Message: msg})
	w.scheduleReset(f, gen)
	return copyState(f.state)
}

func (w *Workflow) fail(f *flow, gen uint64, err error) domain.FlowState {
	w.transition(f, domain.FlowState{Phase: domain.PhaseFailed, Message: failureMessage(err)})
	w.scheduleReset(f, gen)
	return copyState(f.state)
}

// scheduleReset возвращает поток в idle через окно показа результата,
// если к тому моменту не началась новая операция
func (w *Workflow) scheduleReset(f *flow, gen uint64) {
	task, err := w.timers.Schedule(w.cfg.FeedbackWindow, func() {
		w.mu.Lock()
		defer w.mu.Unlock()

		if w.closed || f.generation != gen {
			return
		}
		f.reset = nil
		w.transition(f, domain.FlowState{Phase: domain.PhaseIdle})
	})
	if err != nil {
		w.logger.Warn("Workflow: workflow=%s failed to schedule %s reset: %v", w.id, f.name, err)
		return
	}
	f.reset = task
}

func (w *Workflow) transition(f *flow, next domain.FlowState) {
	next.UpdatedAt = w.clock.Now()
	f.state = next
	w.metrics.WorkflowTransition(f.name, string(next.Phase))
}

func (w *Workflow) normalizeDates(checkIn, checkOut string) (domain.Timestamp, domain.Timestamp, *ValidationError) {
	now := w.clock.Now()
	verr := &ValidationError{}

	in, err := Normalize(checkIn, false, now, w.cfg.CheckOutTime)
	if err != nil {
		verr.add(domain.ViolationCheckIn, err)
	}
	out, err := Normalize(checkOut, true, now, w.cfg.CheckOutTime)
	if err != nil {
		verr.add(domain.ViolationCheckOut, err)
	}

	if len(verr.Violations) > 0 {
		return "", "", verr
	}
	return in, out, nil
}

// failureMessage текст ошибки сервиса передается без изменений
func failureMessage(err error) string {
	var remote *reservationservice.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return MessageServiceUnavailable
}

func copyState(s domain.FlowState) domain.FlowState {
	if s.Violations != nil {
		s.Violations = append([]domain.Violation(nil), s.Violations...)
	}
	return s
}
