package check_carwash_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability"
	svcModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStartTime = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidPrice     = "некорректная стоимость услуги"
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

// Handle GET /api/v1/availability/car-wash?date=&startTime=&priceCents=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	priceCents, err := strconv.ParseInt(query.Get("priceCents"), 10, 64)
	if err != nil || priceCents <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	result, err := h.service.CheckCarWash(r.Context(), &svcModels.CarWashRequest{
		Date:       date,
		StartTime:  startTime,
		PriceCents: priceCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		default:
			h.logger.Error("GET /availability/car-wash - Check failed: date=%s, error=%v",
				query.Get("date"), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
