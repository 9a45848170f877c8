package upsert_override

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
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomTypeNotFound   = "тип номера не найден"
	msgInvalidData        = "некорректные данные переопределения"
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

// Handle PUT /api/v1/room-types/{roomTypeId}/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /room-types/{id}/overrides/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /room-types/{id}/overrides/{date} - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	var req UpsertOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /room-types/{id}/overrides/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, roomTypeID, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /room-types/{id}/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Upsert(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, overrides.ErrRoomTypeNotFound):
			h.logger.Warn("PUT /room-types/{id}/overrides/{date} - Room type not found: room_type_id=%d", roomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, overrides.ErrInvalidInput):
			h.logger.Warn("PUT /room-types/{id}/overrides/{date} - Invalid data: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /room-types/{id}/overrides/{date} - Failed to upsert override: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /room-types/{id}/overrides/{date} - Override saved: room_type_id=%d, date=%s, user_id=%d",
		roomTypeID, result.Date, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
