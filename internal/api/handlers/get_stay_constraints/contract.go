package get_stay_constraints

import (
	"context"

	getStayConstraints "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_stay_constraints"
)

type GetStayConstraintsUseCase interface {
	Execute(ctx context.Context, req *getStayConstraints.Request) (*getStayConstraints.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
