package user

import (
	"strings"

	"entitlement-engine/internal/pkg/errs"
)

var ErrInvalidRole = errs.New("invalid role")

// Role is carried in the access token. Users themselves live in the identity
// provider; this service only needs the role for operator-only routes.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var rank = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := rank[r]
	return ok
}

// NewRole accepts the claim as the identity provider spells it; case and
// surrounding space are not significant.
func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", errs.Mark(errs.Newf("role %q", s), ErrInvalidRole)
	}
	return role, nil
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank nowhere.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && min.IsValid() && rank[r] >= rank[min]
}
