package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		have, need Role
		want       bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleUser, true},
		{RoleUser, RoleUser, true},
		{RoleUser, RoleAdmin, false},
		{"guest", RoleUser, false},
		{RoleAdmin, "superuser", false},
		{"", RoleUser, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.have.Satisfies(tc.need), "%q satisfies %q", tc.have, tc.need)
	}
}

func TestIsAdmin(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}

func TestStateConstructors(t *testing.T) {
	r := Resolving()
	assert.True(t, r.Loading)
	assert.Nil(t, r.User)

	a := Anonymous()
	assert.False(t, a.Loading)
	assert.Nil(t, a.User)

	s := Authenticated(User{ID: "u1", Role: RoleUser})
	assert.False(t, s.Loading)
	if assert.NotNil(t, s.User) {
		assert.Equal(t, "u1", s.User.ID)
	}
}
