package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the record of a simulated payment against an appointment. There
// is no gateway behind it; the transaction id is generated locally.
type Payment struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AppointmentID primitive.ObjectID `json:"appointment_id" bson:"appointmentId"`
	CustomerID    primitive.ObjectID `json:"customer_id" bson:"customerId"`
	Method        string             `json:"method" bson:"method"`
	TransactionID string             `json:"transaction_id" bson:"transactionId"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
}
