package settings_test

import (
	"context"
	"errors"
	"leadgen/internal/settings"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"testing"
	"time"

	mockcache "leadgen/pkg/cache/mock"
	mockstorage "leadgen/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	us = domain.Location{Code: 2840, Name: "United States", CountryCode: "US", TargetType: "Country"}
	ny = domain.Location{Code: 1023191, Name: "New York", CountryCode: "US", TargetType: "City"}
)

func newTestService(t *testing.T) (*mockstorage.MockStorage, *mockcache.MockLocationCache, settings.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mockcache.NewMockLocationCache(ctrl)

	return st, c, settings.New(st, c, settings.Options{LocationTTL: time.Hour})
}

func session() domain.Session {
	return domain.Session{IdentityID: "sub", AccountID: domain.AccountID(uuid.New()), AccountNumber: "A-1"}
}

func TestValidateLocations_CacheThenDatabase(t *testing.T) {
	st, c, s := newTestService(t)

	c.EXPECT().Locations(gomock.Any(), []int{2840, 1023191, 5}).Return(map[int]domain.Location{2840: us}, nil)
	st.EXPECT().LocationsByCodes(gomock.Any(), []int{1023191, 5}).Return([]domain.Location{ny}, nil)
	c.EXPECT().StoreLocations(gomock.Any(), []domain.Location{ny}, time.Hour).Return(nil)

	got, err := s.ValidateLocations(context.Background(), "2840, 1023191,5,abc")
	require.NoError(t, err)
	require.Equal(t, []domain.Location{us, ny}, got.Valid)
	require.Equal(t, []string{"5", "abc"}, got.Invalid)
	require.False(t, got.OK())
}

func TestValidateLocations_CacheFailureFallsBack(t *testing.T) {
	st, c, s := newTestService(t)

	c.EXPECT().Locations(gomock.Any(), []int{2840}).Return(nil, errors.New("redis down"))
	st.EXPECT().LocationsByCodes(gomock.Any(), []int{2840}).Return([]domain.Location{us}, nil)
	c.EXPECT().StoreLocations(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := s.ValidateLocations(context.Background(), "2840")
	require.NoError(t, err)
	require.True(t, got.OK())
}

func TestValidateLocations_Empty(t *testing.T) {
	_, _, s := newTestService(t)

	got, err := s.ValidateLocations(context.Background(), " , ")
	require.NoError(t, err)
	require.True(t, got.OK())
	require.Empty(t, got.Valid)
}

func TestUpdate_NormalizesAndStores(t *testing.T) {
	st, c, s := newTestService(t)
	sess := session()

	c.EXPECT().Locations(gomock.Any(), []int{2840}).Return(map[int]domain.Location{2840: us}, nil)
	want := domain.SearchSettings{Keywords: ptr("hair salon,barber"), Locations: ptr("2840")}
	st.EXPECT().UpdateSearchSettings(gomock.Any(), sess.AccountID, want).
		Return(&domain.Account{ID: sess.AccountID, Settings: want}, nil)

	got, err := s.Update(context.Background(), sess, domain.SearchSettings{
		Keywords:   ptr(" hair salon, barber,"),
		Locations:  ptr("2840 "),
		Categories: ptr(""),
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestUpdate_RejectsInvalidInput(t *testing.T) {
	st, c, s := newTestService(t)
	sess := session()

	_, err := s.Update(context.Background(), sess, domain.SearchSettings{Categories: ptr("plumber,hair-salon")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, serrors.UserMessage(err), "hair-salon")

	c.EXPECT().Locations(gomock.Any(), []int{9}).Return(nil, nil)
	st.EXPECT().LocationsByCodes(gomock.Any(), []int{9}).Return(nil, nil)
	_, err = s.Update(context.Background(), sess, domain.SearchSettings{Locations: ptr("9")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = s.Update(context.Background(), domain.Session{}, domain.SearchSettings{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestGet(t *testing.T) {
	st, _, s := newTestService(t)
	sess := session()

	st.EXPECT().AccountByID(gomock.Any(), sess.AccountID).
		Return(&domain.Account{Settings: domain.SearchSettings{Keywords: ptr("plumber")}}, nil)

	got, err := s.Get(context.Background(), sess)
	require.NoError(t, err)
	require.Equal(t, "plumber", *got.Keywords)

	st.EXPECT().AccountByID(gomock.Any(), sess.AccountID).Return(nil, errors.New("down"))
	_, err = s.Get(context.Background(), sess)
	require.ErrorIs(t, err, serrors.ErrInternal)
}
