package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	walletRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/wallet"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// passthroughTxManager исполняет функцию без реальной транзакции,
// запоминая, какой уровень изоляции запрашивал сервис
type passthroughTxManager struct {
	doCalls           int
	serializableCalls int
}

func (m *passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.doCalls++
	return fn(ctx)
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.serializableCalls++
	return fn(ctx)
}

// fakeWalletRepo воспроизводит атомарную семантику SQL-репозитория:
// DebitBalance отказывает без изменения состояния, если средств не хватает.
type fakeWalletRepo struct {
	balances map[int64]int64
	ledger   []*domain.CreditTransaction
	nextID   int64
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{balances: make(map[int64]int64)}
}

func (f *fakeWalletRepo) GetBalance(_ context.Context, userID int64) (*domain.CreditBalance, error) {
	cents, ok := f.balances[userID]
	if !ok {
		return nil, walletRepo.ErrBalanceNotFound
	}
	return &domain.CreditBalance{UserID: userID, BalanceCents: cents, LastUpdated: time.Now()}, nil
}

func (f *fakeWalletRepo) CreditBalance(_ context.Context, userID, amountCents int64) (int64, error) {
	f.balances[userID] += amountCents
	return f.balances[userID], nil
}

func (f *fakeWalletRepo) DebitBalance(_ context.Context, userID, amountCents int64) (int64, error) {
	if f.balances[userID] < amountCents {
		return 0, walletRepo.ErrInsufficientFunds
	}
	f.balances[userID] -= amountCents
	return f.balances[userID], nil
}

func (f *fakeWalletRepo) InsertTransaction(_ context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error) {
	f.nextID++
	stored := *tx
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.ledger = append(f.ledger, &stored)
	return &stored, nil
}

func (f *fakeWalletRepo) GetTransactions(_ context.Context, userID int64, limit int) ([]*domain.CreditTransaction, error) {
	out := make([]*domain.CreditTransaction, 0)
	for i := len(f.ledger) - 1; i >= 0; i-- {
		if f.ledger[i].UserID != userID {
			continue
		}
		out = append(out, f.ledger[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeWalletRepo) GetTransactionByReference(_ context.Context, userID int64, referenceID, referenceType string, txType domain.TransactionType) (*domain.CreditTransaction, error) {
	for _, tx := range f.ledger {
		if tx.UserID != userID || tx.Type != txType {
			continue
		}
		if tx.ReferenceID == nil || tx.ReferenceType == nil {
			continue
		}
		if *tx.ReferenceID == referenceID && *tx.ReferenceType == referenceType {
			return tx, nil
		}
	}
	return nil, walletRepo.ErrTransactionNotFound
}

func newTestService() (*Service, *fakeWalletRepo) {
	svc, repo, _ := newTestServiceWithTxManager()
	return svc, repo
}

func newTestServiceWithTxManager() (*Service, *fakeWalletRepo, *passthroughTxManager) {
	repo := newFakeWalletRepo()
	txManager := &passthroughTxManager{}
	return NewService(repo, txManager, nopLogger{}), repo, txManager
}

func TestService_GetBalance_MissingRowIsZero(t *testing.T) {
	svc, _ := newTestService()

	balance, err := svc.GetBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance.BalanceCents)
	assert.Equal(t, int64(1), balance.UserID)
}

func TestService_AddCredits(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.AddCredits(context.Background(), &models.AddCreditsRequest{
		UserID:      1,
		AmountCents: 10000,
		Description: "top-up",
	})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, int64(10000), result.NewBalanceCents)
	assert.Equal(t, int64(10000), result.Transaction.BalanceAfterCents)
	assert.Equal(t, domain.TransactionCredit, result.Transaction.Type)
	assert.Equal(t, int64(10000), repo.balances[1])
}

func TestService_AddCredits_IdempotentByReference(t *testing.T) {
	svc, repo := newTestService()

	req := &models.AddCreditsRequest{
		UserID:        1,
		AmountCents:   5000,
		Description:   "payment",
		ReferenceID:   ptr.Ptr("pi_123"),
		ReferenceType: ptr.Ptr("payment_intent"),
	}

	first, err := svc.AddCredits(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, first.Applied)

	second, err := svc.AddCredits(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, second.Applied)
	assert.Equal(t, first.Transaction.ID, second.Transaction.ID)

	// Баланс начислен один раз, строка журнала одна
	assert.Equal(t, int64(5000), repo.balances[1])
	assert.Len(t, repo.ledger, 1)
}

func TestService_AddCredits_ReferenceRunsSerializable(t *testing.T) {
	svc, _, txManager := newTestServiceWithTxManager()
	ctx := context.Background()

	// Без ссылки достаточно обычной транзакции
	_, err := svc.AddCredits(ctx, &models.AddCreditsRequest{
		UserID: 1, AmountCents: 1000, Description: "top-up",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, txManager.doCalls)
	assert.Equal(t, 0, txManager.serializableCalls)

	// Идемпотентная ветка - check-then-insert, ей нужна сериализуемая
	// изоляция, иначе два конкурентных повтора платежа зачислят дважды
	_, err = svc.AddCredits(ctx, &models.AddCreditsRequest{
		UserID:        1,
		AmountCents:   1000,
		Description:   "payment",
		ReferenceID:   ptr.Ptr("pi_777"),
		ReferenceType: ptr.Ptr("payment_intent"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, txManager.doCalls)
	assert.Equal(t, 1, txManager.serializableCalls)
}

func TestService_DeductCredits(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.AddCredits(context.Background(), &models.AddCreditsRequest{
		UserID: 1, AmountCents: 10000, Description: "top-up",
	})
	require.NoError(t, err)

	result, err := svc.DeductCredits(context.Background(), &models.DeductCreditsRequest{
		UserID:      1,
		AmountCents: 4000,
		Description: "booking",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6000), result.NewBalanceCents)
	assert.Equal(t, int64(6000), result.Transaction.BalanceAfterCents)
	assert.Equal(t, domain.TransactionDebit, result.Transaction.Type)
	assert.Equal(t, int64(-4000), result.Transaction.SignedAmountCents())
	assert.Equal(t, int64(6000), repo.balances[1])
}

func TestService_DeductCredits_InsufficientFundsLeavesStateUntouched(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.AddCredits(context.Background(), &models.AddCreditsRequest{
		UserID: 1, AmountCents: 3000, Description: "top-up",
	})
	require.NoError(t, err)

	_, err = svc.DeductCredits(context.Background(), &models.DeductCreditsRequest{
		UserID:      1,
		AmountCents: 5000,
		Description: "booking",
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Баланс не тронут, провальная попытка не попала в журнал
	assert.Equal(t, int64(3000), repo.balances[1])
	assert.Len(t, repo.ledger, 1)
}

func TestService_LedgerBalanceAfterConsistency(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.AddCredits(ctx, &models.AddCreditsRequest{UserID: 1, AmountCents: 10000, Description: "a"})
	require.NoError(t, err)
	_, err = svc.DeductCredits(ctx, &models.DeductCreditsRequest{UserID: 1, AmountCents: 2500, Description: "b"})
	require.NoError(t, err)
	_, err = svc.AddCredits(ctx, &models.AddCreditsRequest{UserID: 1, AmountCents: 500, Description: "c"})
	require.NoError(t, err)

	// Каждая строка журнала несет баланс сразу после своей операции
	var running int64
	for _, tx := range repo.ledger {
		running += tx.SignedAmountCents()
		assert.Equal(t, running, tx.BalanceAfterCents)
	}
	assert.Equal(t, repo.balances[1], running)
}

func TestService_HasSufficientBalance(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ok, err := svc.HasSufficientBalance(ctx, 1, 100)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.AddCredits(ctx, &models.AddCreditsRequest{UserID: 1, AmountCents: 100, Description: "top-up"})
	require.NoError(t, err)

	ok, err = svc.HasSufficientBalance(ctx, 1, 100)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_Transactions_NewestFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddCredits(ctx, &models.AddCreditsRequest{UserID: 1, AmountCents: 1000, Description: "first"})
	require.NoError(t, err)
	_, err = svc.AddCredits(ctx, &models.AddCreditsRequest{UserID: 1, AmountCents: 2000, Description: "second"})
	require.NoError(t, err)

	transactions, err := svc.Transactions(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "second", transactions[0].Description)
	assert.Equal(t, "first", transactions[1].Description)
}

func TestService_ValidationErrors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GetBalance(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddCredits(ctx, &models.AddCreditsRequest{UserID: 1, AmountCents: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.DeductCredits(ctx, &models.DeductCreditsRequest{UserID: 1, AmountCents: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
