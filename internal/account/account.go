// Package account resolves authenticated identities to internal accounts.
package account

import (
	"context"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"leadgen/pkg/storage"
)

//go:generate mockgen -package mockaccount -source=account.go -destination=mock/mockaccount.go *
type Resolver interface {
	// Resolve returns the session of the account linked to identityID.
	Resolve(ctx context.Context, identityID string) (domain.Session, error)
	// Profile returns the full account record of the session.
	Profile(ctx context.Context, session domain.Session) (*domain.Account, error)
}

type resolver struct {
	storage storage.Storage
}

// New creates a Resolver backed by the given storage.
func New(storage storage.Storage) Resolver {
	return &resolver{storage: storage}
}

func (r resolver) Resolve(ctx context.Context, identityID string) (domain.Session, error) {
	if identityID == "" {
		return domain.Session{}, serrors.With(serrors.ErrUnauthorized, "missing identity")
	}

	acc, err := r.storage.AccountByIdentity(ctx, identityID)
	if err != nil {
		return domain.Session{}, serrors.Wrap(serrors.ErrInternal, err, "could not resolve account")
	}
	if acc == nil {
		return domain.Session{IdentityID: identityID},
			serrors.With(serrors.ErrNotFound, "no account is linked to this sign-in")
	}

	return domain.Session{
		IdentityID:    identityID,
		AccountID:     acc.ID,
		AccountNumber: acc.Number,
	}, nil
}

func (r resolver) Profile(ctx context.Context, session domain.Session) (*domain.Account, error) {
	if !session.HasAccount() {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}

	acc, err := r.storage.AccountByID(ctx, session.AccountID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not load account")
	}
	if acc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}

	return acc, nil
}
