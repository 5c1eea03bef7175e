package handoff

import (
	"net/url"
	"strings"

	"entitlement-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	ssoPath         = "/auth/sso"
	defaultRedirect = "/"
)

var (
	ErrNotAuthenticated = errs.New("no valid session to hand off")
	ErrInvalidRedirect  = errs.New("redirect must be a relative path")
	ErrInvalidBaseURL   = errs.New("second application base URL is invalid")
)

// Credential is the token bundle handed to the second application.
// It only ever carries tokens that already exist for the session.
type Credential struct {
	AccessToken   string     `json:"accessToken"`
	RefreshToken  string     `json:"refreshToken"`
	Redirect      string     `json:"redirect"`
	EntitlementID *uuid.UUID `json:"entitlementId,omitempty"`
}

func NewCredential(accessToken, refreshToken, redirectHint string, entitlementID *uuid.UUID) (Credential, error) {
	if strings.TrimSpace(accessToken) == "" || strings.TrimSpace(refreshToken) == "" {
		return Credential{}, ErrNotAuthenticated
	}
	redirect, err := NormalizeRedirect(redirectHint)
	if err != nil {
		return Credential{}, err
	}
	return Credential{
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		Redirect:      redirect,
		EntitlementID: entitlementID,
	}, nil
}

// NormalizeRedirect only admits same-origin paths so the hint cannot send the
// user (and their tokens) to a foreign host.
func NormalizeRedirect(hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return defaultRedirect, nil
	}
	if !strings.HasPrefix(hint, "/") || strings.HasPrefix(hint, "//") || strings.Contains(hint, "\\") {
		return "", ErrInvalidRedirect
	}
	u, err := url.Parse(hint)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "", ErrInvalidRedirect
	}
	return hint, nil
}

// QueryURL builds {base}/auth/sso?token=..&refreshToken=..&redirect=..
func (c Credential) QueryURL(baseURL string) (string, error) {
	base, err := ssoEndpoint(baseURL)
	if err != nil {
		return "", err
	}
	return base + "?token=" + url.QueryEscape(c.AccessToken) +
		"&refreshToken=" + url.QueryEscape(c.RefreshToken) +
		"&redirect=" + url.QueryEscape(c.Redirect), nil
}

// CodeURL builds the single-use code variant: {base}/auth/sso?code=..&redirect=..
func CodeURL(baseURL, code, redirect string) (string, error) {
	base, err := ssoEndpoint(baseURL)
	if err != nil {
		return "", err
	}
	return base + "?code=" + url.QueryEscape(code) + "&redirect=" + url.QueryEscape(redirect), nil
}

func ssoEndpoint(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidBaseURL
	}
	return strings.TrimRight(u.String(), "/") + ssoPath, nil
}
