package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username   string             `json:"username" bson:"username"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"password,omitempty" bson:"password"`
	Role       string             `json:"role" bson:"role"`
	IsApproved bool               `json:"is_approved" bson:"isApproved"`
	CreatedAt  time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updatedAt"`
}

// Sanitize strips the password hash before the record is sent to a client.
func (u *User) Sanitize() {
	u.Password = ""
}
