package reservationservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета исходящих запросов
type Metrics interface {
	ObserveIntegrationRequest(target, operation, outcome string, d time.Duration)
}
