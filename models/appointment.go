package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Appointment struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerID    primitive.ObjectID `json:"customer_id" bson:"customerId"`
	DoctorID      primitive.ObjectID `json:"doctor_id" bson:"doctorId"`
	Date          string             `json:"date" bson:"date"`
	Time          string             `json:"time" bson:"time"`
	Documents     []string           `json:"documents" bson:"documents"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	IsEmergency   bool               `json:"is_emergency" bson:"isEmergency"`
	Status        AppointmentStatus  `json:"status" bson:"status"`
	PaymentStatus PaymentStatus      `json:"payment_status" bson:"paymentStatus"`
	Version       int                `json:"version" bson:"version"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updatedAt"`
}

// IsValidStatus reports whether s is one of the four known appointment states.
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the allowed-transition table. Completed and
// cancelled are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if next != StatusScheduled && next != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", next)
		}
	case StatusScheduled:
		if next != StatusCompleted && next != StatusCancelled {
			return fmt.Errorf("invalid transition from scheduled to %s", next)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	default:
		return fmt.Errorf("unknown status %s", a.Status)
	}
	return nil
}

// CanCancel guards the customer cancel operation.
func (a *Appointment) CanCancel() error {
	switch a.Status {
	case StatusCancelled:
		return fmt.Errorf("appointment is already cancelled")
	case StatusCompleted:
		return fmt.Errorf("completed appointments cannot be cancelled")
	}
	return nil
}

// CanPay guards the customer pay operation. Payment is only accepted while
// the appointment is still upcoming and has not been paid for.
func (a *Appointment) CanPay() error {
	if a.PaymentStatus == PaymentPaid {
		return fmt.Errorf("appointment is already paid")
	}
	if a.Status != StatusPending && a.Status != StatusScheduled {
		return fmt.Errorf("cannot pay for a %s appointment", a.Status)
	}
	return nil
}

// ApplyPayment records a successful payment. A pending appointment is
// promoted to scheduled once it is paid.
func (a *Appointment) ApplyPayment() {
	a.PaymentStatus = PaymentPaid
	if a.Status == StatusPending {
		a.Status = StatusScheduled
	}
}
