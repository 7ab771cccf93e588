package tickets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTicketRepo struct {
	tickets []*domain.Ticket
	nextID  int64
}

func (f *fakeTicketRepo) CreateBatch(_ context.Context, batch []*domain.Ticket) error {
	for _, ticket := range batch {
		f.nextID++
		ticket.ID = f.nextID
		f.tickets = append(f.tickets, ticket)
	}
	return nil
}

func (f *fakeTicketRepo) CountByBookingID(_ context.Context, bookingID int64) (int, error) {
	count := 0
	for _, ticket := range f.tickets {
		if ticket.BookingID != nil && *ticket.BookingID == bookingID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTicketRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Ticket, error) {
	out := make([]*domain.Ticket, 0)
	for _, ticket := range f.tickets {
		if ticket.UserID == userID {
			out = append(out, ticket)
		}
	}
	return out, nil
}

func TestService_IssueForBooking_TicketCount(t *testing.T) {
	tests := []struct {
		name       string
		totalCents int64
		want       int
	}{
		{name: "exactly one tier", totalCents: 2500, want: 1},
		{name: "started second tier rounds up", totalCents: 2600, want: 2},
		{name: "four full tiers", totalCents: 10000, want: 4},
		{name: "below threshold yields nothing", totalCents: 2000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTicketRepo{}
			svc := NewService(repo, true, 2500, 2500, nopLogger{})

			issued, err := svc.IssueForBooking(context.Background(), 1, 10, tt.totalCents)
			require.NoError(t, err)
			assert.Len(t, issued, tt.want)
			assert.Len(t, repo.tickets, tt.want)

			for _, ticket := range issued {
				assert.NotEmpty(t, ticket.TicketNumber)
				assert.Equal(t, domain.TicketActive, ticket.Status)
				require.NotNil(t, ticket.BookingID)
				assert.Equal(t, int64(10), *ticket.BookingID)
			}
		})
	}
}

func TestService_IssueForBooking_IdempotentPerBooking(t *testing.T) {
	repo := &fakeTicketRepo{}
	svc := NewService(repo, true, 2500, 2500, nopLogger{})
	ctx := context.Background()

	first, err := svc.IssueForBooking(ctx, 1, 10, 5000)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := svc.IssueForBooking(ctx, 1, 10, 5000)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, repo.tickets, 2)
}

func TestService_IssueForBooking_Disabled(t *testing.T) {
	repo := &fakeTicketRepo{}
	svc := NewService(repo, false, 2500, 2500, nopLogger{})

	issued, err := svc.IssueForBooking(context.Background(), 1, 10, 10000)
	require.NoError(t, err)
	assert.Empty(t, issued)
	assert.Empty(t, repo.tickets)
}

func TestService_IssueForBooking_InvalidInput(t *testing.T) {
	svc := NewService(&fakeTicketRepo{}, true, 2500, 2500, nopLogger{})

	_, err := svc.IssueForBooking(context.Background(), 0, 10, 5000)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.IssueForBooking(context.Background(), 1, 0, 5000)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListForUser(t *testing.T) {
	repo := &fakeTicketRepo{}
	svc := NewService(repo, true, 2500, 2500, nopLogger{})
	ctx := context.Background()

	_, err := svc.IssueForBooking(ctx, 1, 10, 5000)
	require.NoError(t, err)
	_, err = svc.IssueForBooking(ctx, 2, 11, 2500)
	require.NoError(t, err)

	list, err := svc.ListForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
