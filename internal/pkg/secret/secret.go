package secret

import (
	"entitlement-engine/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errs.New("secret hashing failed")
	ErrMismatch      = errs.New("secret does not match")
	ErrEmptySecret   = errs.New("secret is empty")
)

const DefaultCost = bcrypt.DefaultCost

// Hash produces the bcrypt form stored in configuration instead of the raw secret.
func Hash(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptySecret
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(raw), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Verify(hashed, presented string) error {
	if hashed == "" || presented == "" {
		return ErrEmptySecret
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(presented))
	if err != nil {
		if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
