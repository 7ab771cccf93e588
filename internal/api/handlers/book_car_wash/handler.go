package book_car_wash

import (
	"errors"
	"net/http"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/middleware"
	bookCarWash "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/book_car_wash"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/types"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgInvalidRequest      = "некорректные параметры записи"
	msgSlotUnavailable     = "выбранный слот мойки занят"
	msgInsufficientBalance = "недостаточно средств на кошельке"
)

type Handler struct {
	useCase BookCarWashUseCase
	logger  Logger
}

func NewHandler(useCase BookCarWashUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/car-wash
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "пользователь не аутентифицирован")
		return
	}

	var req BookCarWashRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/car-wash - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/car-wash - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.BookCarWash(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookCarWash.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings/car-wash - Slot unavailable: user_id=%d, date=%s, time=%s",
				userID, req.AppointmentDate, req.AppointmentTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, bookCarWash.ErrInsufficientBalance):
			h.logger.Warn("POST /bookings/car-wash - Insufficient balance: user_id=%d", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientBalance)

		case errors.Is(err, bookCarWash.ErrInvalidInput):
			h.logger.Warn("POST /bookings/car-wash - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings/car-wash - Failed to book: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/car-wash - Booking created: booking_id=%d, user_id=%d, duration=%dm",
		result.Booking.ID, userID, result.DurationMinutes)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
