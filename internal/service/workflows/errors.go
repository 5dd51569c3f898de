package workflows

import "errors"

var (
	// ErrWorkflowNotFound возвращается, когда сессия не найдена или уже закрыта
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrShuttingDown возвращается при открытии сессии после CloseAll
	ErrShuttingDown = errors.New("workflows: service is shutting down")
)
