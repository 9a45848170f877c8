package get_stay_constraints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers"
	getStayConstraints "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_stay_constraints"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomTypeNotFound  = "тип номера не найден"
)

type Handler struct {
	useCase GetStayConstraintsUseCase
	logger  Logger
}

func NewHandler(useCase GetStayConstraintsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeId}/stay-constraints
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/stay-constraints - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /room-types/{id}/stay-constraints - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(roomTypeID, dateStr)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/stay-constraints - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getStayConstraints.ErrRoomTypeNotFound):
			h.logger.Warn("GET /room-types/{id}/stay-constraints - Room type not found: room_type_id=%d", roomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, getStayConstraints.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{id}/stay-constraints - Invalid input: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /room-types/{id}/stay-constraints - Failed to resolve constraints: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /room-types/{id}/stay-constraints - Resolved: room_type_id=%d, date=%s", roomTypeID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
