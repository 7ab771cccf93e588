package get_unavailable_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability"
)

const (
	msgInvalidVehicleName = "не указано имя автомобиля"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleName}/unavailable-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleName := mux.Vars(r)["vehicleName"]
	if vehicleName == "" {
		handlers.RespondBadRequest(w, msgInvalidVehicleName)
		return
	}

	ranges, err := h.service.UnavailableDateRanges(r.Context(), vehicleName)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVehicleName)

		default:
			h.logger.Error("GET /vehicles/{name}/unavailable-dates - Failed: vehicle=%q, error=%v",
				vehicleName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(vehicleName, ranges))
}
