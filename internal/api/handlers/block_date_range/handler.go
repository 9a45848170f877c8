package block_date_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/middleware"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/overrides"
)

const (
	msgInvalidRoomTypeID  = "некорректный ID типа номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректные даты диапазона, ожидается формат YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomTypeNotFound   = "тип номера не найден"
	msgRangeTooLong       = "диапазон дат слишком длинный"
)

type Handler struct {
	service OverridesService
	logger  Logger
}

func NewHandler(service OverridesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/room-types/{roomTypeId}/overrides/block-range
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /room-types/{id}/overrides/block-range - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /room-types/{id}/overrides/block-range - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	var req BlockDateRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /room-types/{id}/overrides/block-range - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, roomTypeID)
	if err != nil {
		h.logger.Warn("POST /room-types/{id}/overrides/block-range - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.SetBlockedRange(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, overrides.ErrRoomTypeNotFound):
			h.logger.Warn("POST /room-types/{id}/overrides/block-range - Room type not found: room_type_id=%d", roomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, overrides.ErrRangeTooLong):
			h.logger.Warn("POST /room-types/{id}/overrides/block-range - Range too long: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, overrides.ErrInvalidInput):
			h.logger.Warn("POST /room-types/{id}/overrides/block-range - Invalid input: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("POST /room-types/{id}/overrides/block-range - Failed to block range: room_type_id=%d, error=%v",
				roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /room-types/{id}/overrides/block-range - Blocked %d date(s): room_type_id=%d, user_id=%d",
		result.BlockedDates, roomTypeID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
