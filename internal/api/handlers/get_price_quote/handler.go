package get_price_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers"
	getPriceQuote "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_price_quote"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgMissingCheckIn    = "дата заезда обязательна"
	msgMissingCheckOut   = "дата выезда обязательна"
	msgInvalidParams     = "некорректные параметры запроса, даты ожидаются в формате YYYY-MM-DD"
	msgRoomTypeNotFound  = "тип номера не найден"
)

type Handler struct {
	useCase GetPriceQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeId}/quote
// Query params: checkIn (required), checkOut (required), units (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/quote - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	query := r.URL.Query()

	checkInStr := query.Get("checkIn")
	if checkInStr == "" {
		h.logger.Warn("GET /room-types/{id}/quote - Missing checkIn")
		handlers.RespondBadRequest(w, msgMissingCheckIn)
		return
	}

	checkOutStr := query.Get("checkOut")
	if checkOutStr == "" {
		h.logger.Warn("GET /room-types/{id}/quote - Missing checkOut")
		handlers.RespondBadRequest(w, msgMissingCheckOut)
		return
	}

	useCaseReq, err := ToUseCaseRequest(roomTypeID, checkInStr, checkOutStr, query.Get("units"))
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/quote - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getPriceQuote.ErrRoomTypeNotFound):
			h.logger.Warn("GET /room-types/{id}/quote - Room type not found: room_type_id=%d", roomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, getPriceQuote.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{id}/quote - Invalid input: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /room-types/{id}/quote - Failed to get quote: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /room-types/{id}/quote - Quoted: room_type_id=%d, total=%.2f, source=%s",
		roomTypeID, result.TotalPrice, result.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
