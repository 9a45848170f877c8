package suggest_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/api/handlers"
	suggestDates "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/suggest_dates"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgMissingPreferred  = "предпочтительная дата заезда обязательна"
	msgMissingNights     = "количество ночей обязательно"
	msgInvalidParams     = "некорректные параметры запроса, дата ожидается в формате YYYY-MM-DD"
)

type Handler struct {
	useCase SuggestDatesUseCase
	logger  Logger
}

func NewHandler(useCase SuggestDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeId}/suggestions
// Query params: preferredCheckIn (required), nights (required), searchRadius (optional, default 14)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomTypeID, err := strconv.ParseInt(vars["roomTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/suggestions - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	query := r.URL.Query()

	preferredStr := query.Get("preferredCheckIn")
	if preferredStr == "" {
		h.logger.Warn("GET /room-types/{id}/suggestions - Missing preferredCheckIn")
		handlers.RespondBadRequest(w, msgMissingPreferred)
		return
	}

	nightsStr := query.Get("nights")
	if nightsStr == "" {
		h.logger.Warn("GET /room-types/{id}/suggestions - Missing nights")
		handlers.RespondBadRequest(w, msgMissingNights)
		return
	}

	useCaseReq, err := ToUseCaseRequest(roomTypeID, preferredStr, nightsStr, query.Get("searchRadius"))
	if err != nil {
		h.logger.Warn("GET /room-types/{id}/suggestions - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestDates.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{id}/suggestions - Invalid input: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /room-types/{id}/suggestions - Failed to suggest dates: room_type_id=%d, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /room-types/{id}/suggestions - Found %d suggestion(s): room_type_id=%d", len(result.Suggestions), roomTypeID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
