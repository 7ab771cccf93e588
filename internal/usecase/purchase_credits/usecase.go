package purchase_credits

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/paymentservice"
	walletModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/purchase_credits/models"
)

const referenceTypePayment = "payment_intent"

// UseCase сценарий зачисления купленных кредитов.
//
// Финализация покупки: платежное намерение проверяется у платежного шлюза,
// затем кошелек пополняется идемпотентно по ID намерения. Повтор вебхука или
// ретрай клиента с тем же intent ID не зачисляет деньги дважды.
type UseCase struct {
	payments PaymentClient
	wallet   WalletService
	logger   Logger
}

// NewUseCase создает новый экземпляр сценария покупки кредитов
func NewUseCase(payments PaymentClient, wallet WalletService, logger Logger) *UseCase {
	return &UseCase{
		payments: payments,
		wallet:   wallet,
		logger:   logger,
	}
}

// PurchaseCredits проверяет платеж и зачисляет кредиты
func (u *UseCase) PurchaseCredits(ctx context.Context, req *models.PurchaseCreditsRequest) (*models.PurchaseCreditsResponse, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PaymentIntentID) == "" {
		return nil, fmt.Errorf("%w: payment intent id is required", ErrInvalidInput)
	}

	intent, err := u.payments.GetPaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrIntentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("%w: PurchaseCredits - get payment intent: %v", ErrInternal, err)
	}

	if intent.UserID != req.UserID {
		u.logger.Warn("PurchaseCredits: intent %s belongs to user %d, requested by %d",
			intent.ID, intent.UserID, req.UserID)
		return nil, ErrPaymentMismatch
	}
	if !intent.IsSucceeded() {
		return nil, fmt.Errorf("%w: status is %s", ErrPaymentNotSucceeded, intent.Status)
	}
	if intent.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: intent amount is not positive", ErrInvalidInput)
	}

	refID := intent.ID
	refType := referenceTypePayment

	result, err := u.wallet.AddCredits(ctx, &walletModels.AddCreditsRequest{
		UserID:        req.UserID,
		AmountCents:   intent.AmountCents,
		Description:   fmt.Sprintf("Credit purchase, payment %s", intent.ID),
		ReferenceID:   &refID,
		ReferenceType: &refType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: PurchaseCredits - add credits: %v", ErrInternal, err)
	}

	if !result.Applied {
		u.logger.Info("PurchaseCredits: intent %s already credited for user %d", intent.ID, req.UserID)
	} else {
		u.logger.Info("PurchaseCredits: credited %d cents to user %d, balance=%d",
			intent.AmountCents, req.UserID, result.NewBalanceCents)
	}

	return &models.PurchaseCreditsResponse{
		AmountCents:     intent.AmountCents,
		NewBalanceCents: result.NewBalanceCents,
		AlreadyApplied:  !result.Applied,
	}, nil
}
