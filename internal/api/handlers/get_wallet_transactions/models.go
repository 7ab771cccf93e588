package get_wallet_transactions

import (
	"time"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

// TransactionItem строка журнала в ответе
type TransactionItem struct {
	ID                int64   `json:"id"`
	Type              string  `json:"type"`
	AmountCents       int64   `json:"amountCents"`
	BalanceAfterCents int64   `json:"balanceAfterCents"`
	Description       string  `json:"description"`
	ReferenceID       *string `json:"referenceId,omitempty"`
	ReferenceType     *string `json:"referenceType,omitempty"`
	CreatedAt         string  `json:"createdAt"`
}

// TransactionsResponse HTTP response model
type TransactionsResponse struct {
	Transactions []TransactionItem `json:"transactions"`
}

// FromDomain конвертирует транзакции в HTTP response
func FromDomain(list []*domain.CreditTransaction) *TransactionsResponse {
	items := make([]TransactionItem, 0, len(list))
	for _, tx := range list {
		items = append(items, TransactionItem{
			ID:                tx.ID,
			Type:              string(tx.Type),
			AmountCents:       tx.AmountCents,
			BalanceAfterCents: tx.BalanceAfterCents,
			Description:       tx.Description,
			ReferenceID:       tx.ReferenceID,
			ReferenceType:     tx.ReferenceType,
			CreatedAt:         tx.CreatedAt.Format(time.RFC3339),
		})
	}
	return &TransactionsResponse{Transactions: items}
}
