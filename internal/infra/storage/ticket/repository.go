package ticket

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

var ticketColumns = []string{
	"id",
	"ticket_number",
	"user_id",
	"booking_id",
	"status",
	"issued_at",
}

// Repository репозиторий лотерейных билетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория билетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает пачку билетов одним запросом
func (r *Repository) CreateBatch(ctx context.Context, tickets []*domain.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("lottery_tickets").
		Columns("ticket_number", "user_id", "booking_id", "status")

	for _, t := range tickets {
		insertBuilder = insertBuilder.Values(t.TicketNumber, t.UserID, t.BookingID, t.Status)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CountByBookingID возвращает количество билетов, выданных по бронированию.
// Используется для идемпотентной выдачи: повторный вызов ничего не добавляет.
func (r *Repository) CountByBookingID(ctx context.Context, bookingID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("lottery_tickets").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByBookingID - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByUserID получает билеты пользователя (новые первыми)
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Ticket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ticketColumns...).
		From("lottery_tickets").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("issued_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tickets := make([]*domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		var issuedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.TicketNumber,
			&t.UserID,
			&t.BookingID,
			&t.Status,
			&issuedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		t.IssuedAt = issuedAt.Time
		tickets = append(tickets, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return tickets, nil
}
