package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpx/internal/api"
	"erpx/internal/models"
)

const validToken = "tok-abc"

var testUser = models.User{
	ID:       1,
	Username: "alice",
	Email:    "alice@example.com",
	Role:     models.RoleManager,
}

// newTestBackend fakes the two endpoints the session controller needs
func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["username"] != "alice" || creds["password"] != "correct123" {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Token: validToken, User: testUser})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(testUser)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestController(t *testing.T) (*Controller, *api.Client, *models.TokenStore) {
	t.Helper()

	server := newTestBackend(t)
	store := models.NewTokenStore(t.TempDir())
	client := api.NewClient(server.URL, store)
	return NewController(client, store), client, store
}

func TestNewControllerStartsInitializing(t *testing.T) {
	t.Parallel()

	ctrl, _, _ := newTestController(t)

	assert.Equal(t, StateInitializing, ctrl.State())
	assert.False(t, ctrl.IsAuthenticated())
	assert.Nil(t, ctrl.CurrentUser())
}

func TestBootstrapWithoutToken(t *testing.T) {
	t.Parallel()

	ctrl, _, _ := newTestController(t)
	ctrl.Bootstrap()

	assert.Equal(t, StateUnauthenticated, ctrl.State())
}

func TestBootstrapWithValidToken(t *testing.T) {
	t.Parallel()

	server := newTestBackend(t)
	store := models.NewTokenStore(t.TempDir())
	require.NoError(t, store.SaveToken(validToken))

	client := api.NewClient(server.URL, store)
	ctrl := NewController(client, store)
	ctrl.Bootstrap()

	assert.Equal(t, StateAuthenticated, ctrl.State())
	require.NotNil(t, ctrl.CurrentUser())
	assert.Equal(t, "alice", ctrl.CurrentUser().Username)
}

func TestBootstrapWithRejectedTokenClearsIt(t *testing.T) {
	t.Parallel()

	server := newTestBackend(t)
	store := models.NewTokenStore(t.TempDir())
	require.NoError(t, store.SaveToken("stale-token"))

	client := api.NewClient(server.URL, store)
	ctrl := NewController(client, store)
	ctrl.Bootstrap()

	assert.Equal(t, StateUnauthenticated, ctrl.State())
	assert.Empty(t, client.AuthToken)

	// The stale token was removed from storage
	_, err := store.GetToken()
	assert.Error(t, err)
}

func TestBootstrapRunsOnce(t *testing.T) {
	t.Parallel()

	ctrl, _, store := newTestController(t)
	ctrl.Bootstrap()
	assert.Equal(t, StateUnauthenticated, ctrl.State())

	// A token appearing later must not be picked up by a second call
	require.NoError(t, store.SaveToken(validToken))
	ctrl.Bootstrap()

	assert.Equal(t, StateUnauthenticated, ctrl.State())
}

func TestLoginPersistsAndInstallsToken(t *testing.T) {
	t.Parallel()

	ctrl, client, store := newTestController(t)
	ctrl.Bootstrap()

	user, err := ctrl.Login("alice", "correct123")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, StateAuthenticated, ctrl.State())
	assert.Equal(t, validToken, client.AuthToken)

	stored, err := store.GetToken()
	require.NoError(t, err)
	assert.Equal(t, validToken, stored)
}

func TestLoginFailurePropagates(t *testing.T) {
	t.Parallel()

	ctrl, client, store := newTestController(t)
	ctrl.Bootstrap()

	_, err := ctrl.Login("alice", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrAuthentication)
	assert.Equal(t, StateUnauthenticated, ctrl.State())
	assert.Empty(t, client.AuthToken)

	_, storeErr := store.GetToken()
	assert.Error(t, storeErr)
}

func TestLoginWhileAuthenticatedFails(t *testing.T) {
	t.Parallel()

	ctrl, _, _ := newTestController(t)
	ctrl.Bootstrap()

	_, err := ctrl.Login("alice", "correct123")
	require.NoError(t, err)

	_, err = ctrl.Login("alice", "correct123")
	assert.Error(t, err)
}

func TestLogoutClearsEverything(t *testing.T) {
	t.Parallel()

	ctrl, client, store := newTestController(t)
	ctrl.Bootstrap()

	_, err := ctrl.Login("alice", "correct123")
	require.NoError(t, err)

	ctrl.Logout()

	assert.Equal(t, StateUnauthenticated, ctrl.State())
	assert.Nil(t, ctrl.CurrentUser())
	assert.Empty(t, client.AuthToken)

	_, storeErr := store.GetToken()
	assert.Error(t, storeErr)
}

func TestLogoutFromUnauthenticatedIsHarmless(t *testing.T) {
	t.Parallel()

	ctrl, client, _ := newTestController(t)
	ctrl.Bootstrap()

	ctrl.Logout()

	assert.Equal(t, StateUnauthenticated, ctrl.State())
	assert.Empty(t, client.AuthToken)
}

func TestSubscribersNotifiedOnTransitions(t *testing.T) {
	t.Parallel()

	ctrl, _, _ := newTestController(t)

	notified := 0
	ctrl.Subscribe(func() { notified++ })

	ctrl.Bootstrap() // -> unauthenticated
	_, err := ctrl.Login("alice", "correct123")
	require.NoError(t, err)
	ctrl.Logout()

	assert.Equal(t, 3, notified)
}
