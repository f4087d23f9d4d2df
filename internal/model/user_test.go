package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHasRole(t *testing.T) {
	tests := []struct {
		name  string
		roles string
		want  bool
	}{
		{name: "single admin", roles: "ADMIN", want: true},
		{name: "admin among others", roles: "USER;ADMIN", want: true},
		{name: "user only", roles: "USER", want: false},
		{name: "lowercase does not match", roles: "USER;admin", want: false},
		{name: "padded token does not match", roles: "USER; ADMIN", want: false},
		{name: "prefix does not match", roles: "ADMINISTRATOR", want: false},
		{name: "empty", roles: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := User{Roles: tt.roles}
			assert.Equal(t, tt.want, u.HasRole(RoleAdmin))
		})
	}
}
