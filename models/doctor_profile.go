package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSpecialty is used for the empty profile created at doctor
// registration, before the doctor has filled in any practice details.
const DefaultSpecialty = "Not specified"

// DoctorProfile extends a doctor-role user one-to-one with practice metadata.
// IsApproved mirrors the owning user's flag; both are set together by the
// admin approval operation and listings are always driven by the profile copy.
type DoctorProfile struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"user_id" bson:"userId"`
	Specialty  string             `json:"specialty" bson:"specialty"`
	ClinicName string             `json:"clinic_name,omitempty" bson:"clinicName,omitempty"`
	Address    string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	IsApproved bool               `json:"is_approved" bson:"isApproved"`
	CreatedAt  time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updatedAt"`
}

// NewDoctorProfile builds the empty, unapproved profile created alongside a
// doctor registration.
func NewDoctorProfile(userID primitive.ObjectID) DoctorProfile {
	now := time.Now()
	return DoctorProfile{
		UserID:     userID,
		Specialty:  DefaultSpecialty,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
