package domain

import "time"

// TransactionType тип операции по кошельку
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// CreditBalance is the single per-user balance row. Money is integer cents.
type CreditBalance struct {
	UserID       int64
	BalanceCents int64
	LastUpdated  time.Time
}

// CreditTransaction is one append-only ledger row. BalanceAfterCents must equal
// the stored balance immediately after the operation that wrote it; rows are
// never updated or deleted.
type CreditTransaction struct {
	ID                int64
	UserID            int64
	Type              TransactionType
	AmountCents       int64 // always positive; Type carries the sign
	BalanceAfterCents int64
	Description       string
	ReferenceID       *string
	ReferenceType     *string
	CreatedAt         time.Time
}

// SignedAmountCents returns the delta this transaction applied to the balance
func (t *CreditTransaction) SignedAmountCents() int64 {
	if t.Type == TransactionDebit {
		return -t.AmountCents
	}
	return t.AmountCents
}
