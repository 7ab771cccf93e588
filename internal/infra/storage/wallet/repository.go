package wallet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/dbmetrics"
	"github.com/bonaparks-dev/DR7-empire-sub000/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var transactionColumns = []string{
	"id",
	"user_id",
	"transaction_type",
	"amount_cents",
	"balance_after_cents",
	"description",
	"reference_id",
	"reference_type",
	"created_at",
}

// Repository репозиторий кредитного кошелька: строка баланса на пользователя
// плюс append-only журнал транзакций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кошелька
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBalance получает строку баланса пользователя
func (r *Repository) GetBalance(ctx context.Context, userID int64) (*domain.CreditBalance, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "balance_cents", "last_updated").
		From("user_credit_balance").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBalance - build select query: %v", ErrBuildQuery, err)
	}

	var balance domain.CreditBalance
	var lastUpdated sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&balance.UserID,
		&balance.BalanceCents,
		&lastUpdated,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBalanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBalance - scan balance: %v", ErrScanRow, err)
	}

	balance.LastUpdated = lastUpdated.Time
	return &balance, nil
}

// CreditBalance атомарно увеличивает баланс пользователя на amountCents,
// создавая строку баланса при первом пополнении. Возвращает новый баланс.
//
// Дельта применяется одним UPSERT-запросом - никакого read-modify-write
// на стороне приложения, конкурентные пополнения не теряются.
func (r *Repository) CreditBalance(ctx context.Context, userID int64, amountCents int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `
		INSERT INTO user_credit_balance (user_id, balance_cents, last_updated)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET balance_cents = user_credit_balance.balance_cents + EXCLUDED.balance_cents,
		              last_updated  = NOW()
		RETURNING balance_cents`

	var newBalance int64
	if err := executor.QueryRowContext(ctx, query, userID, amountCents).Scan(&newBalance); err != nil {
		return 0, fmt.Errorf("%w: CreditBalance - execute upsert: %v", ErrExecQuery, err)
	}

	return newBalance, nil
}

// DebitBalance атомарно уменьшает баланс пользователя на amountCents.
// Проверка неотрицательности выполняется в самом UPDATE: ноль затронутых
// строк означает недостаток средств (либо отсутствие строки баланса,
// что эквивалентно нулевому балансу).
func (r *Repository) DebitBalance(ctx context.Context, userID int64, amountCents int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `
		UPDATE user_credit_balance
		SET balance_cents = balance_cents - $2,
		    last_updated  = NOW()
		WHERE user_id = $1 AND balance_cents >= $2
		RETURNING balance_cents`

	var newBalance int64
	err := executor.QueryRowContext(ctx, query, userID, amountCents).Scan(&newBalance)
	if err == sql.ErrNoRows {
		return 0, ErrInsufficientFunds
	}
	if err != nil {
		return 0, fmt.Errorf("%w: DebitBalance - execute update: %v", ErrExecQuery, err)
	}

	return newBalance, nil
}

// InsertTransaction добавляет строку в журнал транзакций.
// Журнал append-only: обновлений и удалений не существует.
func (r *Repository) InsertTransaction(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("credit_transactions").
		Columns(
			"user_id",
			"transaction_type",
			"amount_cents",
			"balance_after_cents",
			"description",
			"reference_id",
			"reference_type",
		).
		Values(
			tx.UserID,
			tx.Type,
			tx.AmountCents,
			tx.BalanceAfterCents,
			tx.Description,
			tx.ReferenceID,
			tx.ReferenceType,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: InsertTransaction - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tx.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: InsertTransaction - execute insert: %v", ErrExecQuery, err)
	}

	tx.CreatedAt = createdAt.Time
	return tx, nil
}

// GetTransactions получает последние транзакции пользователя (новые первыми)
func (r *Repository) GetTransactions(ctx context.Context, userID int64, limit int) ([]*domain.CreditTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if limit <= 0 {
		limit = domain.DefaultTransactionsLimit
	}

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("credit_transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTransactions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTransactions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.CreditTransaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTransactions - scan row: %v", ErrScanRow, err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTransactions - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// GetTransactionByReference ищет транзакцию по внешней ссылке.
// Используется для идемпотентного начисления: повторное пополнение с тем же
// reference_id не должно применяться дважды.
func (r *Repository) GetTransactionByReference(
	ctx context.Context,
	userID int64,
	referenceID string,
	referenceType string,
	txType domain.TransactionType,
) (*domain.CreditTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("credit_transactions").
		Where(squirrel.Eq{
			"user_id":          userID,
			"reference_id":     referenceID,
			"reference_type":   referenceType,
			"transaction_type": txType,
		}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTransactionByReference - build select query: %v", ErrBuildQuery, err)
	}

	tx, err := scanTransaction(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTransactionByReference - scan row: %v", ErrScanRow, err)
	}

	return tx, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*domain.CreditTransaction, error) {
	var tx domain.CreditTransaction
	var createdAt sql.NullTime

	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Type,
		&tx.AmountCents,
		&tx.BalanceAfterCents,
		&tx.Description,
		&tx.ReferenceID,
		&tx.ReferenceType,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	tx.CreatedAt = createdAt.Time
	return &tx, nil
}
