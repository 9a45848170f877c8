package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers"
	getCalendar "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_calendar"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgInvalidParams     = "некорректные параметры запроса, дата ожидается в формате YYYY-MM-DD"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeId}/calendar
// Query params: startDate (optional, default today), months (optional, default 12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/calendar - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(roomTypeID, query.Get("startDate"), query.Get("months"))
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/calendar - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{id}/calendar - Invalid input: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /room-types/{id}/calendar - Failed to build calendar: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /room-types/{id}/calendar - Built: room_type_id=%d, entries=%d", roomTypeID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
