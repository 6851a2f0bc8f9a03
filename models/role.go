package models

import "strings"

const (
	RoleCustomer = "customer"
	RoleDoctor   = "doctor"
	RoleAdmin    = "admin"
)

// RoleForEmail infers the role assigned at registration. Addresses under the
// organisation's doctor domain register as doctors; everyone else is a
// customer. This is the only way a doctor account comes into existence.
func RoleForEmail(email, doctorDomain string) string {
	if doctorDomain != "" && strings.HasSuffix(strings.ToLower(email), strings.ToLower(doctorDomain)) {
		return RoleDoctor
	}
	return RoleCustomer
}
