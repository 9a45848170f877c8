package get_stay_constraints

import (
	"context"
	"time"
)

// StayRulesService интерфейс сервиса ограничений длительности проживания
type StayRulesService interface {
	GetMinimumStay(ctx context.Context, roomTypeID int64, date time.Time) (*int, error)
	GetMaximumStay(ctx context.Context, roomTypeID int64, date time.Time) (*int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
