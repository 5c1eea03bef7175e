//go:build unit

package user_test

import (
	"testing"

	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want user.Role
		ok   bool
	}{
		{name: "success: operator", in: "operator", want: user.RoleOperator, ok: true},
		{name: "success: case and space are ignored", in: " Admin ", want: user.RoleAdmin, ok: true},
		{name: "error: unknown", in: "root"},
		{name: "error: empty", in: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			role, err := user.NewRole(tc.in)

			if !tc.ok {
				assert.True(t, errs.Is(err, user.ErrInvalidRole))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleOperator))
	assert.True(t, user.RoleOperator.AtLeast(user.RoleOperator))
	assert.False(t, user.RoleViewer.AtLeast(user.RoleOperator))
	assert.False(t, user.Role("").AtLeast(user.RoleViewer))
	assert.False(t, user.RoleAdmin.AtLeast(user.Role("root")))
}
