package delete_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/middleware"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/overrides"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgRoomTypeNotFound  = "тип номера не найден"
	msgOverrideNotFound  = "переопределение даты не найдено"
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

// Handle DELETE /api/v1/room-types/{roomTypeId}/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /room-types/{id}/overrides/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /room-types/{id}/overrides/{date} - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	dateStr, err := types.NewDateStringFromString(vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /room-types/{id}/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	date, err := dateStr.ToTime()
	if err != nil {
		h.logger.Warn("DELETE /room-types/{id}/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Delete(r.Context(), userID, roomTypeID, date); err != nil {
		switch {
		case errors.Is(err, overrides.ErrRoomTypeNotFound):
			h.logger.Warn("DELETE /room-types/{id}/overrides/{date} - Room type not found: room_type_id=%d", roomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, overrides.ErrOverrideNotFound):
			h.logger.Warn("DELETE /room-types/{id}/overrides/{date} - Override not found: room_type_id=%d, date=%s",
				roomTypeID, dateStr)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		case errors.Is(err, overrides.ErrInvalidInput):
			h.logger.Warn("DELETE /room-types/{id}/overrides/{date} - Invalid input: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /room-types/{id}/overrides/{date} - Failed to delete override: room_type_id=%d, error=%v",
				roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /room-types/{id}/overrides/{date} - Override removed: room_type_id=%d, date=%s, user_id=%d",
		roomTypeID, dateStr, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
