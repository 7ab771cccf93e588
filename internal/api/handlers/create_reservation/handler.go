package create_reservation

import (
	"errors"
	"net/http"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты/времени, ожидается RFC3339"
	msgInvalidRequest     = "некорректные параметры резервации"
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

// Handle POST /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	period, err := req.Period()
	if err != nil {
		h.logger.Warn("POST /admin/reservations - Failed to parse period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), req.VehicleID, period, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /admin/reservations - Failed: vehicle_id=%d, error=%v",
				req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reservations - Reservation created: id=%d, vehicle_id=%d",
		reservation.ID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(reservation))
}
