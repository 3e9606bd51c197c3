package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/utils"
)

type stubBookingReader struct {
	booking models.ConfirmedBooking
	getErr  error
	updated []string
}

func (s *stubBookingReader) GetByID(ctx context.Context, id int64) (models.ConfirmedBooking, error) {
	return s.booking, s.getErr
}

func (s *stubBookingReader) ListByUser(ctx context.Context, userID int64) ([]models.ConfirmedBooking, error) {
	return []models.ConfirmedBooking{s.booking}, nil
}

func (s *stubBookingReader) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.updated = append(s.updated, status)
	return nil
}

func cancellableBooking(depIn time.Duration, now time.Time) models.ConfirmedBooking {
	dep := now.Add(depIn)
	return models.ConfirmedBooking{
		ID:            5,
		Reference:     "ref-5",
		UserID:        9,
		Status:        models.StatusConfirmed,
		TripDate:      utils.FormatDate(dep),
		DepartureTime: clock12(dep),
	}
}

func clock12(t time.Time) string {
	return t.Format("03:04 PM")
}

func TestCancelInsideWindowRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	repo := &stubBookingReader{booking: cancellableBooking(6*time.Hour, now)}
	svc := BookingService{Repo: repo, Policy: config.DefaultPolicy(), Now: func() time.Time { return now }}

	err := svc.Cancel(context.Background(), 5, 9)

	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, repo.updated)
}

func TestCancelOutsideWindowSucceeds(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	repo := &stubBookingReader{booking: cancellableBooking(48*time.Hour, now)}
	svc := BookingService{Repo: repo, Policy: config.DefaultPolicy(), Now: func() time.Time { return now }}

	err := svc.Cancel(context.Background(), 5, 9)

	assert.NoError(t, err)
	assert.Equal(t, []string{models.StatusCancelled}, repo.updated)
}

func TestCancelWrongOwnerLooksLikeMissing(t *testing.T) {
	now := time.Now()
	repo := &stubBookingReader{booking: cancellableBooking(48*time.Hour, now)}
	svc := BookingService{Repo: repo, Policy: config.DefaultPolicy(), Now: func() time.Time { return now }}

	err := svc.Cancel(context.Background(), 5, 1234)

	assert.True(t, domain.IsNotFound(err))
	assert.Empty(t, repo.updated)
}

func TestCancelNonConfirmedConflicts(t *testing.T) {
	now := time.Now()
	b := cancellableBooking(48*time.Hour, now)
	b.Status = models.StatusCompleted
	repo := &stubBookingReader{booking: b}
	svc := BookingService{Repo: repo, Policy: config.DefaultPolicy(), Now: func() time.Time { return now }}

	err := svc.Cancel(context.Background(), 5, 9)

	assert.True(t, domain.IsConflict(err))
}

func TestHistoryRequiresUser(t *testing.T) {
	svc := BookingService{Repo: &stubBookingReader{}, Policy: config.DefaultPolicy()}
	_, err := svc.History(context.Background(), 0)
	assert.True(t, domain.IsValidation(err))
}
