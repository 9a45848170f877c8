package get_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers"
	getSummary "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_summary"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgMissingStartDate  = "начальная дата обязательна"
	msgMissingEndDate    = "конечная дата обязательна"
	msgInvalidParams     = "некорректные параметры запроса, даты ожидаются в формате YYYY-MM-DD"
)

type Handler struct {
	useCase GetSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeId}/summary
// Query params: startDate (required), endDate (required, inclusive)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/summary - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	query := r.URL.Query()

	startDateStr := query.Get("startDate")
	if startDateStr == "" {
		h.logger.Warn("GET /room-types/{id}/summary - Missing startDate")
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}

	endDateStr := query.Get("endDate")
	if endDateStr == "" {
		h.logger.Warn("GET /room-types/{id}/summary - Missing endDate")
		handlers.RespondBadRequest(w, msgMissingEndDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(roomTypeID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/summary - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSummary.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{id}/summary - Invalid input: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /room-types/{id}/summary - Failed to build summary: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /room-types/{id}/summary - Built: room_type_id=%d, dates=%d", roomTypeID, result.TotalDates)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
