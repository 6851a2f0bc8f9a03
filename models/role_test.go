package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleForEmail(t *testing.T) {
	assert.Equal(t, RoleDoctor, RoleForEmail("d@org.doctor", "org.doctor"))
	assert.Equal(t, RoleDoctor, RoleForEmail("D@ORG.DOCTOR", "org.doctor"))
	assert.Equal(t, RoleCustomer, RoleForEmail("alice@example.com", "org.doctor"))
	assert.Equal(t, RoleCustomer, RoleForEmail("org.doctor@example.com", "org.doctor"))

	// With no marker configured nobody registers as a doctor.
	assert.Equal(t, RoleCustomer, RoleForEmail("d@org.doctor", ""))
}
