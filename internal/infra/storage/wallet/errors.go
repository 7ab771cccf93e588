package wallet

import "errors"

var (
	// ErrBalanceNotFound возвращается, когда у пользователя еще нет строки баланса
	ErrBalanceNotFound = errors.New("wallet.repository: balance not found")

	// ErrInsufficientFunds возвращается, когда списание превышает текущий баланс
	ErrInsufficientFunds = errors.New("wallet.repository: insufficient funds")

	// ErrTransactionNotFound возвращается, когда транзакция не найдена
	ErrTransactionNotFound = errors.New("wallet.repository: transaction not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("wallet.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("wallet.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("wallet.repository: failed to scan row")
)
