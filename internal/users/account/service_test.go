// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelhub/reelhub/internal/platform/apperr"
	"github.com/reelhub/reelhub/internal/platform/sec"
	"github.com/reelhub/reelhub/internal/users/auth"
	"github.com/reelhub/reelhub/pkg/pagination"
	"github.com/reelhub/reelhub/pkg/pointer"
)

// fakeAccountRepository is an in-memory AccountRepository for service tests.
type fakeAccountRepository struct {
	users     map[string]*auth.User
	updateErr error
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{users: make(map[string]*auth.User)}
}

func (f *fakeAccountRepository) List(_ context.Context, params pagination.Params) ([]*auth.User, int, error) {
	var active []*auth.User
	for _, u := range f.users {
		if u.Status == auth.StatusActive {
			active = append(active, u)
		}
	}

	total := len(active)
	if params.Offset() >= total {
		return nil, total, nil
	}
	return active[params.Offset():], total, nil
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	u, ok := f.users[id]
	if !ok || u.Status != auth.StatusActive {
		return nil, apperr.NotFound("User")
	}
	copy := *u
	return &copy, nil
}

func (f *fakeAccountRepository) Update(_ context.Context, user *auth.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeAccountRepository) Disable(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return apperr.NotFound("User")
	}
	u.Status = auth.StatusDisabled
	return nil
}

func (f *fakeAccountRepository) PushReviewID(_ context.Context, userID, reviewID string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	u.ReviewIDs = append(u.ReviewIDs, reviewID)
	return nil
}

func newAccountFixture() (*Service, *fakeAccountRepository) {
	repo := newFakeAccountRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func seedUser(repo *fakeAccountRepository, id, name, email string) {
	repo.users[id] = &auth.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      sec.RoleGuest,
		ReviewIDs: []string{},
		Status:    auth.StatusActive,
	}
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	service, repo := newAccountFixture()
	seedUser(repo, "u1", "Original Name", "original@example.com")

	updated, err := service.UpdateProfile(context.Background(), "u1", UpdateProfileInput{
		Name: pointer.To("New Name"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "original@example.com", updated.Email, "unset fields must be untouched")
}

func TestUpdateProfile_BothFields(t *testing.T) {
	service, repo := newAccountFixture()
	seedUser(repo, "u1", "Original Name", "original@example.com")

	updated, err := service.UpdateProfile(context.Background(), "u1", UpdateProfileInput{
		Name:  pointer.To("New Name"),
		Email: pointer.To("new@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	service, _ := newAccountFixture()

	_, err := service.UpdateProfile(context.Background(), "ghost", UpdateProfileInput{
		Name: pointer.To("Whoever"),
	})

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateProfile_StorageFailure(t *testing.T) {
	service, repo := newAccountFixture()
	seedUser(repo, "u1", "Original Name", "original@example.com")
	repo.updateErr = errors.New("connection reset")

	_, err := service.UpdateProfile(context.Background(), "u1", UpdateProfileInput{
		Name: pointer.To("New Name"),
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "account_service_update_failed")
}

func TestDisableAccount(t *testing.T) {
	service, repo := newAccountFixture()
	seedUser(repo, "u1", "Name", "mail@example.com")
	repo.users["u1"].ReviewIDs = []string{"r1", "r2"}

	require.NoError(t, service.DisableAccount(context.Background(), "u1"))

	assert.Equal(t, auth.StatusDisabled, repo.users["u1"].Status)
	assert.Equal(t, []string{"r1", "r2"}, repo.users["u1"].ReviewIDs, "review references survive retirement")

	_, err := service.GetProfile(context.Background(), "u1")
	assert.True(t, apperr.IsNotFound(err), "disabled accounts must not resolve")
}

func TestListProfiles_Meta(t *testing.T) {
	service, repo := newAccountFixture()
	seedUser(repo, "u1", "A", "a@example.com")
	seedUser(repo, "u2", "B", "b@example.com")
	seedUser(repo, "u3", "C", "c@example.com")
	repo.users["u3"].Status = auth.StatusDisabled

	users, meta, err := service.ListProfiles(context.Background(), pagination.Params{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Len(t, users, 2, "disabled accounts are excluded from listings")
	assert.Equal(t, 2, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}
