package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
	walletRepo "github.com/bonaparks-dev/DR7-empire-sub000/internal/infra/storage/wallet"
	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/wallet/models"
)

// Service сервис кредитного кошелька.
//
// Каждая мутация - одна транзакция БД: дельта баланса и строка журнала
// записываются атомарно. balance_after_cents в журнале берется из RETURNING
// того же запроса, что применил дельту, поэтому при конкурентных операциях
// он всегда соответствует фактическому балансу на момент записи.
type Service struct {
	repo      WalletRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса кошелька
func NewService(repo WalletRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetBalance возвращает баланс пользователя.
// Отсутствие строки баланса - не ошибка, а нулевой баланс.
func (s *Service) GetBalance(ctx context.Context, userID int64) (*models.Balance, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	balance, err := s.repo.GetBalance(ctx, userID)
	if errors.Is(err, walletRepo.ErrBalanceNotFound) {
		return &models.Balance{UserID: userID, BalanceCents: 0}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBalance - get balance: %v", ErrInternal, err)
	}

	return &models.Balance{
		UserID:       balance.UserID,
		BalanceCents: balance.BalanceCents,
		LastUpdated:  balance.LastUpdated,
	}, nil
}

// HasSufficientBalance проверяет, хватает ли средств на списание.
// Проверка справочная: источником истины остается атомарный DebitBalance,
// только он защищает от гонки между проверкой и списанием.
func (s *Service) HasSufficientBalance(ctx context.Context, userID int64, amountCents int64) (bool, error) {
	if amountCents <= 0 {
		return false, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}

	return balance.BalanceCents >= amountCents, nil
}

// AddCredits пополняет кошелек и пишет строку журнала в одной транзакции БД.
//
// Если передана внешняя ссылка и начисление с ней уже существует, операция
// не применяется повторно: возвращается существующая транзакция с Applied=false.
func (s *Service) AddCredits(ctx context.Context, req *models.AddCreditsRequest) (*models.OperationResult, error) {
	if err := validateOperation(req.UserID, req.AmountCents); err != nil {
		return nil, err
	}

	var result *models.OperationResult

	// Ветка с внешней ссылкой - это check-then-insert: на READ COMMITTED два
	// конкурентных повтора одного платежа могут оба не увидеть существующую
	// строку и зачислить дважды. Сериализуемая изоляция откатывает одного
	// из них, повтор видит строку и завершается как идемпотентный.
	run := s.txManager.Do
	if req.ReferenceID != nil && req.ReferenceType != nil {
		run = s.txManager.DoSerializable
	}

	err := run(ctx, func(ctx context.Context) error {
		if req.ReferenceID != nil && req.ReferenceType != nil {
			existing, err := s.repo.GetTransactionByReference(
				ctx, req.UserID, *req.ReferenceID, *req.ReferenceType, domain.TransactionCredit)
			if err != nil && !errors.Is(err, walletRepo.ErrTransactionNotFound) {
				return fmt.Errorf("check reference: %w", err)
			}
			if existing != nil {
				s.logger.Info("AddCredits: duplicate reference %s/%s for user %d, skipping",
					*req.ReferenceType, *req.ReferenceID, req.UserID)
				result = &models.OperationResult{
					Transaction:     existing,
					NewBalanceCents: existing.BalanceAfterCents,
					Applied:         false,
				}
				return nil
			}
		}

		newBalance, err := s.repo.CreditBalance(ctx, req.UserID, req.AmountCents)
		if err != nil {
			return fmt.Errorf("credit balance: %w", err)
		}

		tx, err := s.repo.InsertTransaction(ctx, &domain.CreditTransaction{
			UserID:            req.UserID,
			Type:              domain.TransactionCredit,
			AmountCents:       req.AmountCents,
			BalanceAfterCents: newBalance,
			Description:       req.Description,
			ReferenceID:       req.ReferenceID,
			ReferenceType:     req.ReferenceType,
		})
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		result = &models.OperationResult{
			Transaction:     tx,
			NewBalanceCents: newBalance,
			Applied:         true,
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: AddCredits - transaction: %v", ErrInternal, err)
	}

	if result.Applied {
		s.logger.Info("AddCredits: user=%d, amount=%d, balance=%d",
			req.UserID, req.AmountCents, result.NewBalanceCents)
	}
	return result, nil
}

// DeductCredits списывает средства и пишет строку журнала в одной транзакции БД.
// Недостаток средств возвращается как ErrInsufficientBalance, состояние
// кошелька при этом не меняется.
func (s *Service) DeductCredits(ctx context.Context, req *models.DeductCreditsRequest) (*models.OperationResult, error) {
	if err := validateOperation(req.UserID, req.AmountCents); err != nil {
		return nil, err
	}

	var result *models.OperationResult

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		newBalance, err := s.repo.DebitBalance(ctx, req.UserID, req.AmountCents)
		if err != nil {
			return fmt.Errorf("debit balance: %w", err)
		}

		tx, err := s.repo.InsertTransaction(ctx, &domain.CreditTransaction{
			UserID:            req.UserID,
			Type:              domain.TransactionDebit,
			AmountCents:       req.AmountCents,
			BalanceAfterCents: newBalance,
			Description:       req.Description,
			ReferenceID:       req.ReferenceID,
			ReferenceType:     req.ReferenceType,
		})
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		result = &models.OperationResult{
			Transaction:     tx,
			NewBalanceCents: newBalance,
			Applied:         true,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, walletRepo.ErrInsufficientFunds) {
			s.logger.Warn("DeductCredits: insufficient funds, user=%d, amount=%d",
				req.UserID, req.AmountCents)
			return nil, ErrInsufficientBalance
		}
		return nil, fmt.Errorf("%w: DeductCredits - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("DeductCredits: user=%d, amount=%d, balance=%d",
		req.UserID, req.AmountCents, result.NewBalanceCents)
	return result, nil
}

// Transactions возвращает последние транзакции пользователя (новые первыми)
func (s *Service) Transactions(ctx context.Context, userID int64, limit int) ([]*domain.CreditTransaction, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	transactions, err := s.repo.GetTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: Transactions - get transactions: %v", ErrInternal, err)
	}

	return transactions, nil
}

func validateOperation(userID, amountCents int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if amountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	return nil
}
