package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers"
	checkAvailability "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/check_availability"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgMissingCheckIn    = "дата заезда обязательна"
	msgMissingCheckOut   = "дата выезда обязательна"
	msgInvalidParams     = "некорректные параметры запроса, даты ожидаются в формате YYYY-MM-DD"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeId}/availability
// Query params: checkIn (required), checkOut (required), units (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем roomTypeId из URL
	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/availability - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	query := r.URL.Query()

	checkInStr := query.Get("checkIn")
	if checkInStr == "" {
		h.logger.Warn("GET /room-types/{id}/availability - Missing checkIn")
		handlers.RespondBadRequest(w, msgMissingCheckIn)
		return
	}

	checkOutStr := query.Get("checkOut")
	if checkOutStr == "" {
		h.logger.Warn("GET /room-types/{id}/availability - Missing checkOut")
		handlers.RespondBadRequest(w, msgMissingCheckOut)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(roomTypeID, checkInStr, checkOutStr, query.Get("units"))
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/availability - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{id}/availability - Invalid input: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /room-types/{id}/availability - Failed to check availability: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /room-types/{id}/availability - Checked: room_type_id=%d, available=%v", roomTypeID, result.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
