package block_date_range

import (
	"context"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/overrides/models"
)

type OverridesService interface {
	SetBlockedRange(ctx context.Context, req *models.BlockRangeRequest) (*models.BlockRangeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
