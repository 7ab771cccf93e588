package purchase_credits

import (
	"errors"
	"net/http"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/handlers"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/api/middleware"
	purchaseCredits "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/purchase_credits"
	ucModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/purchase_credits/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgPaymentNotFound     = "платеж не найден"
	msgPaymentNotSucceeded = "платеж не завершен"
	msgPaymentMismatch     = "платеж принадлежит другому пользователю"
)

type Handler struct {
	useCase PurchaseCreditsUseCase
	logger  Logger
}

func NewHandler(useCase PurchaseCreditsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wallet/purchase
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "пользователь не аутентифицирован")
		return
	}

	var req PurchaseCreditsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wallet/purchase - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.PurchaseCredits(r.Context(), &ucModels.PurchaseCreditsRequest{
		UserID:          userID,
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, purchaseCredits.ErrPaymentNotFound):
			h.logger.Warn("POST /wallet/purchase - Payment not found: user_id=%d, intent=%s",
				userID, req.PaymentIntentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, purchaseCredits.ErrPaymentNotSucceeded):
			h.logger.Warn("POST /wallet/purchase - Payment not succeeded: user_id=%d, intent=%s",
				userID, req.PaymentIntentID)
			handlers.RespondError(w, http.StatusConflict, msgPaymentNotSucceeded)

		case errors.Is(err, purchaseCredits.ErrPaymentMismatch):
			h.logger.Warn("POST /wallet/purchase - Payment mismatch: user_id=%d, intent=%s",
				userID, req.PaymentIntentID)
			handlers.RespondForbidden(w, msgPaymentMismatch)

		case errors.Is(err, purchaseCredits.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /wallet/purchase - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wallet/purchase - Credited: user_id=%d, amount=%d, already_applied=%t",
		userID, result.AmountCents, result.AlreadyApplied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
