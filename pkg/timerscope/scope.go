// Package timerscope привязывает отложенные задачи к времени жизни владельца:
// после Close ни одна запланированная задача не выполнится.
package timerscope

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// ErrClosed возвращается при попытке запланировать задачу в закрытом scope
var ErrClosed = errors.New("timerscope: scope is closed")

// Scope набор отменяемых отложенных задач
type Scope struct {
	clock clock.Clock

	mu     sync.Mutex
	tasks  map[*Task]struct{}
	closed bool
}

// Task отложенная задача внутри Scope
type Task struct {
	scope *Scope
	timer *clock.Timer
}

// New создает scope поверх переданных часов (clock.New() в production, clock.NewMock() в тестах)
func New(c clock.Clock) *Scope {
	return &Scope{
		clock: c,
		tasks: make(map[*Task]struct{}),
	}
}

// Schedule выполняет fn через d, если задача не будет отменена и scope не будет закрыт раньше
func (s *Scope) Schedule(d time.Duration, fn func()) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	task := &Task{scope: s}
	s.tasks[task] = struct{}{}
	task.timer = s.clock.AfterFunc(d, func() {
		if !s.release(task) {
			return
		}
		fn()
	})

	return task, nil
}

// release снимает задачу с учета; false означает, что задача уже отменена
func (s *Scope) release(task *Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if _, ok := s.tasks[task]; !ok {
		return false
	}
	delete(s.tasks, task)
	return true
}

// Cancel отменяет задачу. Возвращает false, если задача уже выполнилась или была отменена.
// Уже начавшееся выполнение fn не прерывается.
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}

	s := t.scope
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[t]; !ok {
		return false
	}
	delete(s.tasks, t)
	t.timer.Stop()
	return true
}

// Pending количество задач, ожидающих выполнения
func (s *Scope) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Close отменяет все задачи; повторный вызов безопасен
func (s *Scope) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for task := range s.tasks {
		task.timer.Stop()
		delete(s.tasks, task)
	}
}

// Closed сообщает, был ли scope закрыт
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
