package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofade/barber-manager/internal/models"
)

func newScheduled(t *testing.T) *models.Appointment {
	t.Helper()

	ap, err := New(NewInput{
		ScheduledAt: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		ServiceType: "Corte",
		DurationMin: 30,
		Price:       50,
	})
	require.NoError(t, err)
	return ap
}

func TestNewDefaultsToScheduled(t *testing.T) {
	ap := newScheduled(t)

	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.Equal(t, string(ChannelManual), ap.Channel)
	assert.Nil(t, ap.StartedAt)
	assert.Nil(t, ap.CompletedAt)
	assert.Nil(t, ap.CancelledAt)
	assert.Nil(t, ap.PaymentMethod)
}

func TestNewValidation(t *testing.T) {
	_, err := New(NewInput{ServiceType: "Corte", Price: 50})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = New(NewInput{
		ScheduledAt: time.Now(),
		ServiceType: "   ",
		Price:       50,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = New(NewInput{
		ScheduledAt: time.Now(),
		ServiceType: "Corte",
		Price:       -1,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestStartThenComplete(t *testing.T) {
	ap := newScheduled(t)
	now := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)

	require.NoError(t, Start(ap, now))
	assert.Equal(t, string(StatusInProgress), ap.Status)
	require.NotNil(t, ap.StartedAt)

	done := now.Add(30 * time.Minute)
	require.NoError(t, Complete(ap, PaymentCard, "", "", done))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, done, *ap.CompletedAt)
	require.NotNil(t, ap.PaymentMethod)
	assert.Equal(t, string(PaymentCard), *ap.PaymentMethod)
	assert.Equal(t, 50.0, ap.Price)
}

func TestCompleteRequiresInProgress(t *testing.T) {
	ap := newScheduled(t)

	err := Complete(ap, PaymentCash, "", "", time.Now())
	require.Error(t, err)
	assert.True(t, IsInvalidTransition(err))

	// falha não pode deixar rastro
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.Nil(t, ap.CompletedAt)
	assert.Nil(t, ap.PaymentMethod)
}

func TestCompleteRejectsBadPriceWithoutMutating(t *testing.T) {
	ap := newScheduled(t)
	require.NoError(t, Start(ap, time.Now()))

	err := Complete(ap, PaymentCash, "abc", "", time.Now())
	require.Error(t, err)
	assert.True(t, IsInvalidPrice(err))

	assert.Equal(t, string(StatusInProgress), ap.Status)
	assert.Nil(t, ap.CompletedAt)
	assert.Equal(t, 50.0, ap.Price)
}

func TestCancelFromScheduledAndInProgress(t *testing.T) {
	ap := newScheduled(t)
	require.NoError(t, Cancel(ap, time.Now()))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	ap = newScheduled(t)
	require.NoError(t, Start(ap, time.Now()))
	require.NoError(t, Cancel(ap, time.Now()))
	assert.Equal(t, string(StatusCancelled), ap.Status)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		ap := newScheduled(t)
		ap.Status = string(status)

		assert.True(t, IsInvalidTransition(Start(ap, time.Now())))
		assert.True(t, IsInvalidTransition(Cancel(ap, time.Now())))
		assert.True(t, IsInvalidTransition(Complete(ap, PaymentCash, "", "", time.Now())))
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"cash", "card", "instant-transfer", "bank-transfer"} {
		_, err := ParsePaymentMethod(valid)
		assert.NoError(t, err, valid)
	}

	_, err := ParsePaymentMethod("cheque")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
