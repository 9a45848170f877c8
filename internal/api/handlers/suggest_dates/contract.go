package suggest_dates

import (
	"context"

	suggestDates "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/suggest_dates"
)

type SuggestDatesUseCase interface {
	Execute(ctx context.Context, req *suggestDates.Request) (*suggestDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
