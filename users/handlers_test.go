package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/schoolfinder-go/apperror"
	"github.com/user/schoolfinder-go/auth"
)

type fakeProfileStore struct {
	updateCalls int
	updateUser  *auth.User
	updateErr   error

	deleteCalls int
	deleteErr   error
}

func (f *fakeProfileStore) UpdateProfile(_ context.Context, _ int64, _ *UpdateProfileRequest) (*auth.User, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateUser, nil
}

func (f *fakeProfileStore) DeleteProfile(_ context.Context, _ int64) error {
	f.deleteCalls++
	return f.deleteErr
}

func principal() *auth.User {
	return &auth.User{
		ID:        7,
		Name:      "Jane",
		Email:     "jane@example.com",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func authedRequest(method, path string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	return req.WithContext(auth.NewContextWithUser(req.Context(), principal()))
}

func TestHandleGetProfile(t *testing.T) {
	t.Parallel()

	h := NewUserHandlers(&fakeProfileStore{})
	rec := httptest.NewRecorder()
	h.HandleGetProfile().ServeHTTP(rec, authedRequest(http.MethodGet, "/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "jane@example.com", resp.User.Email)
}

func TestHandleGetProfile_NoPrincipal(t *testing.T) {
	t.Parallel()

	h := NewUserHandlers(&fakeProfileStore{})
	rec := httptest.NewRecorder()
	h.HandleGetProfile().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleUpdateProfile_Valid(t *testing.T) {
	t.Parallel()

	updated := principal()
	updated.Name = "Janet"
	store := &fakeProfileStore{updateUser: updated}
	h := NewUserHandlers(store)

	body, _ := json.Marshal(map[string]string{"name": "Janet"})
	rec := httptest.NewRecorder()
	h.HandleUpdateProfile().ServeHTTP(rec, authedRequest(http.MethodPut, "/profile", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.updateCalls)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Janet", resp.User.Name)
}

func TestHandleUpdateProfile_InvalidEmail(t *testing.T) {
	t.Parallel()

	store := &fakeProfileStore{}
	h := NewUserHandlers(store)

	body, _ := json.Marshal(map[string]string{"email": "not-an-email"})
	rec := httptest.NewRecorder()
	h.HandleUpdateProfile().ServeHTTP(rec, authedRequest(http.MethodPut, "/profile", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, store.updateCalls)
}

func TestHandleUpdateProfile_DuplicateEmail(t *testing.T) {
	t.Parallel()

	store := &fakeProfileStore{updateErr: apperror.NewConflictError("Email already exists", nil)}
	h := NewUserHandlers(store)

	body, _ := json.Marshal(map[string]string{"email": "taken@example.com"})
	rec := httptest.NewRecorder()
	h.HandleUpdateProfile().ServeHTTP(rec, authedRequest(http.MethodPut, "/profile", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeleteProfile(t *testing.T) {
	t.Parallel()

	store := &fakeProfileStore{}
	h := NewUserHandlers(store)

	rec := httptest.NewRecorder()
	h.HandleDeleteProfile().ServeHTTP(rec, authedRequest(http.MethodDelete, "/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.deleteCalls)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User profile deleted successfully", resp.Message)
}

func TestHandleDeleteProfile_NoPrincipal(t *testing.T) {
	t.Parallel()

	store := &fakeProfileStore{}
	h := NewUserHandlers(store)

	rec := httptest.NewRecorder()
	h.HandleDeleteProfile().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, store.deleteCalls)
}
