package delete_override

import (
	"context"
	"time"
)

type OverridesService interface {
	Delete(ctx context.Context, userID, roomTypeID int64, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
