package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to scheduled", StatusPending, StatusScheduled, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to pending", StatusScheduled, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusScheduled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			err := a.CanTransitionTo(tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, (&Appointment{Status: StatusPending}).CanCancel())
	assert.NoError(t, (&Appointment{Status: StatusScheduled}).CanCancel())

	err := (&Appointment{Status: StatusCompleted}).CanCancel()
	assert.Error(t, err)

	err = (&Appointment{Status: StatusCancelled}).CanCancel()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already cancelled")
}

func TestCanPay(t *testing.T) {
	assert.NoError(t, (&Appointment{Status: StatusPending, PaymentStatus: PaymentPending}).CanPay())
	assert.NoError(t, (&Appointment{Status: StatusScheduled, PaymentStatus: PaymentPending}).CanPay())

	err := (&Appointment{Status: StatusScheduled, PaymentStatus: PaymentPaid}).CanPay()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already paid")

	assert.Error(t, (&Appointment{Status: StatusCancelled, PaymentStatus: PaymentPending}).CanPay())
	assert.Error(t, (&Appointment{Status: StatusCompleted, PaymentStatus: PaymentPending}).CanPay())
}

func TestApplyPayment(t *testing.T) {
	// Paying a pending appointment schedules it.
	a := &Appointment{Status: StatusPending, PaymentStatus: PaymentPending}
	a.ApplyPayment()
	assert.Equal(t, StatusScheduled, a.Status)
	assert.Equal(t, PaymentPaid, a.PaymentStatus)

	// Paying a scheduled appointment leaves the status alone.
	a = &Appointment{Status: StatusScheduled, PaymentStatus: PaymentPending}
	a.ApplyPayment()
	assert.Equal(t, StatusScheduled, a.Status)
	assert.Equal(t, PaymentPaid, a.PaymentStatus)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusScheduled))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("confirmed"))
	assert.False(t, IsValidStatus(""))
}
