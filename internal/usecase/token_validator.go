package usecase

import (
	"entitlement-engine/internal/domain/user"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/pkg/jwt"

	"github.com/google/uuid"
)

// ErrInvalidCredentials marks every token rejection; the cause stays attached
// for logging.
var ErrInvalidCredentials = errs.New("invalid credentials")

// TokenValidator checks tokens minted by the identity provider.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidCredentials)
	}
	userID, err := subjectOf(claims)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidCredentials)
	}
	return userID, role, nil
}

// ValidateRefreshToken ignores the role; refresh tokens are only ever passed on.
func (t *tokenValidatorImpl) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtService.ValidateRefreshToken(tokenString)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCredentials)
	}
	return subjectOf(claims)
}

// subjectOf requires a user id, and a sub claim that agrees with it when present.
func subjectOf(claims *jwt.Claims) (uuid.UUID, error) {
	if claims.UserID == uuid.Nil {
		return uuid.Nil, errs.Mark(errs.New("token has no user id"), ErrInvalidCredentials)
	}
	if claims.Subject != "" && claims.Subject != claims.UserID.String() {
		return uuid.Nil, errs.Mark(errs.Newf("token subject %q does not match user id", claims.Subject), ErrInvalidCredentials)
	}
	return claims.UserID, nil
}
