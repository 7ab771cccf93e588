package set_vehicle_blackout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVehicleID   = "некорректный идентификатор автомобиля"
	msgInvalidWindow      = "некорректные границы окна недоступности"
	msgVehicleNotFound    = "автомобиль не найден"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/vehicles/{vehicleId}/blackout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := strconv.ParseInt(mux.Vars(r)["vehicleId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req SetBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/vehicles/{id}/blackout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	from, until, fromTime, untilTime, err := req.Blackout()
	if err != nil {
		h.logger.Warn("PUT /admin/vehicles/{id}/blackout - Failed to parse window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	if err := h.service.SetVehicleBlackout(r.Context(), vehicleID, from, until, fromTime, untilTime, req.Reason); err != nil {
		switch {
		case errors.Is(err, reservations.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("PUT /admin/vehicles/{id}/blackout - Failed: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/vehicles/{id}/blackout - Updated: vehicle_id=%d", vehicleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
