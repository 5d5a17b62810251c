package account_test

import (
	"context"
	"errors"
	"leadgen/internal/account"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"testing"

	mockstorage "leadgen/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := account.New(st)

	id := domain.AccountID(uuid.New())
	st.EXPECT().AccountByIdentity(gomock.Any(), "sub-1").Return(&domain.Account{ID: id, Number: "A-7"}, nil)

	session, err := r.Resolve(context.Background(), "sub-1")
	require.NoError(t, err)
	require.Equal(t, domain.Session{IdentityID: "sub-1", AccountID: id, AccountNumber: "A-7"}, session)
	require.True(t, session.HasAccount())
}

func TestResolve_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := account.New(st)

	_, err := r.Resolve(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().AccountByIdentity(gomock.Any(), "ghost").Return(nil, nil)
	session, err := r.Resolve(context.Background(), "ghost")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.False(t, session.HasAccount())

	st.EXPECT().AccountByIdentity(gomock.Any(), "sub-1").Return(nil, errors.New("timeout"))
	_, err = r.Resolve(context.Background(), "sub-1")
	require.ErrorIs(t, err, serrors.ErrInternal)
}

func TestProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := account.New(st)

	_, err := r.Profile(context.Background(), domain.Session{})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	id := domain.AccountID(uuid.New())
	st.EXPECT().AccountByID(gomock.Any(), id).Return(&domain.Account{ID: id, DisplayName: "Acme"}, nil)
	acc, err := r.Profile(context.Background(), domain.Session{AccountID: id})
	require.NoError(t, err)
	require.Equal(t, "Acme", acc.DisplayName)
}
