package purchase_credits

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/integrations/paymentservice"
	walletModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/purchase_credits/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakePayments struct {
	intents map[string]*paymentservice.PaymentIntent
}

func (f *fakePayments) GetPaymentIntent(_ context.Context, intentID string) (*paymentservice.PaymentIntent, error) {
	intent, ok := f.intents[intentID]
	if !ok {
		return nil, paymentservice.ErrIntentNotFound
	}
	return intent, nil
}

type fakeWallet struct {
	requests []*walletModels.AddCreditsRequest
	applied  map[string]int64 // reference id -> зачисленная сумма
}

func (f *fakeWallet) AddCredits(_ context.Context, req *walletModels.AddCreditsRequest) (*walletModels.OperationResult, error) {
	if f.applied == nil {
		f.applied = make(map[string]int64)
	}
	f.requests = append(f.requests, req)

	if req.ReferenceID != nil {
		if amount, ok := f.applied[*req.ReferenceID]; ok {
			return &walletModels.OperationResult{NewBalanceCents: amount, Applied: false}, nil
		}
		f.applied[*req.ReferenceID] = req.AmountCents
	}
	return &walletModels.OperationResult{NewBalanceCents: req.AmountCents, Applied: true}, nil
}

func newTestUseCase(intents ...*paymentservice.PaymentIntent) (*UseCase, *fakeWallet) {
	payments := &fakePayments{intents: make(map[string]*paymentservice.PaymentIntent)}
	for _, intent := range intents {
		payments.intents[intent.ID] = intent
	}
	wallet := &fakeWallet{}
	return NewUseCase(payments, wallet, nopLogger{}), wallet
}

func succeededIntent() *paymentservice.PaymentIntent {
	return &paymentservice.PaymentIntent{
		ID:          "pi_123",
		UserID:      1,
		AmountCents: 10000,
		Currency:    "EUR",
		Status:      paymentservice.IntentStatusSucceeded,
	}
}

func TestUseCase_PurchaseCredits(t *testing.T) {
	uc, wallet := newTestUseCase(succeededIntent())

	resp, err := uc.PurchaseCredits(context.Background(), &models.PurchaseCreditsRequest{
		UserID:          1,
		PaymentIntentID: "pi_123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), resp.AmountCents)
	assert.Equal(t, int64(10000), resp.NewBalanceCents)
	assert.False(t, resp.AlreadyApplied)

	require.Len(t, wallet.requests, 1)
	require.NotNil(t, wallet.requests[0].ReferenceID)
	assert.Equal(t, "pi_123", *wallet.requests[0].ReferenceID)
	assert.Equal(t, "payment_intent", *wallet.requests[0].ReferenceType)
}

func TestUseCase_PurchaseCredits_RetryIsIdempotent(t *testing.T) {
	uc, _ := newTestUseCase(succeededIntent())
	ctx := context.Background()
	req := &models.PurchaseCreditsRequest{UserID: 1, PaymentIntentID: "pi_123"}

	first, err := uc.PurchaseCredits(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.AlreadyApplied)

	second, err := uc.PurchaseCredits(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.AlreadyApplied)
	assert.Equal(t, first.NewBalanceCents, second.NewBalanceCents)
}

func TestUseCase_PurchaseCredits_UnknownIntent(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.PurchaseCredits(context.Background(), &models.PurchaseCreditsRequest{
		UserID:          1,
		PaymentIntentID: "pi_missing",
	})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestUseCase_PurchaseCredits_ForeignIntent(t *testing.T) {
	uc, wallet := newTestUseCase(succeededIntent())

	_, err := uc.PurchaseCredits(context.Background(), &models.PurchaseCreditsRequest{
		UserID:          2,
		PaymentIntentID: "pi_123",
	})
	assert.ErrorIs(t, err, ErrPaymentMismatch)
	assert.Empty(t, wallet.requests)
}

func TestUseCase_PurchaseCredits_NotSucceeded(t *testing.T) {
	intent := succeededIntent()
	intent.Status = paymentservice.IntentStatusPending
	uc, wallet := newTestUseCase(intent)

	_, err := uc.PurchaseCredits(context.Background(), &models.PurchaseCreditsRequest{
		UserID:          1,
		PaymentIntentID: "pi_123",
	})
	assert.ErrorIs(t, err, ErrPaymentNotSucceeded)
	assert.Empty(t, wallet.requests)
}

func TestUseCase_PurchaseCredits_Validation(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.PurchaseCredits(ctx, &models.PurchaseCreditsRequest{UserID: 0, PaymentIntentID: "pi_123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.PurchaseCredits(ctx, &models.PurchaseCreditsRequest{UserID: 1, PaymentIntentID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
