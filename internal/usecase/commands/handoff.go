package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"entitlement-engine/internal/domain/handoff"
	"entitlement-engine/internal/pkg/errs"
	"entitlement-engine/internal/pkg/secret"
	"entitlement-engine/internal/usecase"
	"entitlement-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	HandoffModeQuery = "query"
	HandoffModeCode  = "code"

	handoffCodeBytes = 32
)

type HandoffSettings struct {
	SecondAppBaseURL   string
	Mode               string
	CodeTTL            time.Duration
	ExchangeSecretHash string
}

type IssueHandoffInput struct {
	UserID        uuid.UUID
	AccessToken   string
	RefreshToken  string
	Redirect      string
	EntitlementID *uuid.UUID
}

type HandoffCommands interface {
	Issue(ctx context.Context, in IssueHandoffInput) (string, error)
	Exchange(ctx context.Context, code, presentedSecret string) (handoff.Credential, error)
}

type handoffUseCaseImpl struct {
	uow      shared.UnitOfWork
	tokens   usecase.TokenValidator
	codes    HandoffCodeStore
	settings HandoffSettings
}

func NewHandoffUseCase(uow shared.UnitOfWork, tokens usecase.TokenValidator, codes HandoffCodeStore, settings HandoffSettings) HandoffCommands {
	if settings.Mode == "" {
		settings.Mode = HandoffModeQuery
	}
	return &handoffUseCaseImpl{
		uow:      uow,
		tokens:   tokens,
		codes:    codes,
		settings: settings,
	}
}

// Issue packages the caller's existing tokens for the second application and
// returns the URL to send the browser to. No new token is minted.
func (uc *handoffUseCaseImpl) Issue(ctx context.Context, in IssueHandoffInput) (string, error) {
	subject, _, err := uc.tokens.ValidateToken(in.AccessToken)
	if err != nil || subject != in.UserID {
		return "", ErrNotAuthenticated
	}
	if in.RefreshToken == "" {
		return "", ErrNotAuthenticated
	}
	if refreshSubject, err := uc.tokens.ValidateRefreshToken(in.RefreshToken); err != nil || refreshSubject != in.UserID {
		return "", ErrNotAuthenticated
	}

	if in.EntitlementID != nil {
		ent, err := uc.uow.CommandReads().EntitlementByID(ctx, *in.EntitlementID)
		if err != nil {
			if isNotFound(err) {
				return "", ErrEntitlementNotFound
			}
			return "", err
		}
		if ent.UserID() != in.UserID {
			return "", ErrEntitlementNotFound
		}
	}

	cred, err := handoff.NewCredential(in.AccessToken, in.RefreshToken, in.Redirect, in.EntitlementID)
	if err != nil {
		if errs.Is(err, handoff.ErrNotAuthenticated) {
			return "", ErrNotAuthenticated
		}
		return "", err
	}

	if uc.settings.Mode != HandoffModeCode {
		return cred.QueryURL(uc.settings.SecondAppBaseURL)
	}

	code, err := newHandoffCode()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate handoff code")
	}
	if err := uc.codes.Put(ctx, code, cred, uc.settings.CodeTTL); err != nil {
		return "", errs.Wrap(err, "failed to store handoff code")
	}
	slog.Info("handoff code issued", "user_id", in.UserID)
	return handoff.CodeURL(uc.settings.SecondAppBaseURL, code, cred.Redirect)
}

// Exchange is called server-to-server by the second application. Each code can
// be exchanged once.
func (uc *handoffUseCaseImpl) Exchange(ctx context.Context, code, presentedSecret string) (handoff.Credential, error) {
	if err := secret.Verify(uc.settings.ExchangeSecretHash, presentedSecret); err != nil {
		slog.Warn("handoff exchange refused", "error", err)
		return handoff.Credential{}, ErrHandoffExchangeRefused
	}
	if code == "" {
		return handoff.Credential{}, ErrHandoffCodeInvalid
	}
	return uc.codes.Take(ctx, code)
}

func newHandoffCode() (string, error) {
	buf := make([]byte, handoffCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
