package check_partial_unavailability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability"
	svcModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

const (
	msgInvalidVehicleName = "не указано имя автомобиля"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPickupTime  = "некорректный формат времени выдачи, ожидается HH:MM"
	msgVehicleNotFound    = "автомобиль не найден"
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

// Handle GET /api/v1/vehicles/{vehicleName}/partial-unavailability?date=&pickupTime=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleName := mux.Vars(r)["vehicleName"]
	if vehicleName == "" {
		handlers.RespondBadRequest(w, msgInvalidVehicleName)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var pickupTime *types.TimeString
	if raw := r.URL.Query().Get("pickupTime"); raw != "" {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidPickupTime)
			return
		}
		pickupTime = &t
	}

	result, err := h.service.CheckPartialDay(r.Context(), &svcModels.PartialDayRequest{
		VehicleName: vehicleName,
		Date:        date,
		PickupTime:  pickupTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /vehicles/{name}/partial-unavailability - Failed: vehicle=%q, error=%v",
				vehicleName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
