package session

import (
	"fmt"
	"sync"

	"erpx/internal/api"
	"erpx/internal/models"
)

// State identifies where the session is in its lifecycle
type State int

const (
	// StateInitializing is the state before Bootstrap has completed.
	// Nothing should read auth state while the session is here.
	StateInitializing State = iota

	// StateUnauthenticated means no valid token is held
	StateUnauthenticated

	// StateAuthenticated means a validated token and user are held
	StateAuthenticated
)

// Controller owns the authentication state of the application. It is
// constructed once at startup and injected into every consumer; there is
// no package-level session.
type Controller struct {
	client     *api.Client
	tokenStore *models.TokenStore

	mu           sync.Mutex
	state        State
	user         *models.User
	bootstrapped bool
	subscribers  []func()
}

// NewController creates a session controller in the initializing state
func NewController(client *api.Client, tokenStore *models.TokenStore) *Controller {
	return &Controller{
		client:     client,
		tokenStore: tokenStore,
		state:      StateInitializing,
	}
}

// Bootstrap validates any persisted token against the backend and settles
// the session into authenticated or unauthenticated. It runs at most once;
// any failure clears the stale token and degrades to logged out.
func (c *Controller) Bootstrap() {
	c.mu.Lock()
	if c.bootstrapped {
		c.mu.Unlock()
		return
	}
	c.bootstrapped = true
	c.mu.Unlock()

	token, err := c.tokenStore.GetToken()
	if err != nil || token == "" {
		c.transition(StateUnauthenticated, nil)
		return
	}

	c.client.SetAuthToken(token)
	user, err := c.client.GetCurrentUser()
	if err != nil {
		if err := c.tokenStore.ClearToken(); err != nil {
			fmt.Printf("Warning: Failed to clear stale token: %v\n", err)
		}
		c.client.SetAuthToken("")
		c.transition(StateUnauthenticated, nil)
		return
	}

	c.transition(StateAuthenticated, user)
}

// Login authenticates with the backend, persists the returned token and
// installs it in the API client. Failures propagate to the caller and
// leave the session unauthenticated.
func (c *Controller) Login(username, password string) (*models.User, error) {
	if c.State() == StateAuthenticated {
		return nil, fmt.Errorf("already authenticated, log out first")
	}

	auth, err := c.client.Login(username, password)
	if err != nil {
		return nil, err
	}

	if err := c.tokenStore.SaveToken(auth.Token); err != nil {
		return nil, fmt.Errorf("failed to save auth token: %w", err)
	}
	c.client.SetAuthToken(auth.Token)

	user := auth.User
	c.transition(StateAuthenticated, &user)
	return &user, nil
}

// Logout clears both the persisted and in-memory token regardless of the
// current state. Synchronous, no network call.
func (c *Controller) Logout() {
	if err := c.tokenStore.ClearToken(); err != nil {
		fmt.Printf("Warning: Failed to clear token: %v\n", err)
	}
	c.client.SetAuthToken("")
	c.transition(StateUnauthenticated, nil)
}

// State returns the current session state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsAuthenticated reports whether a validated session is held
func (c *Controller) IsAuthenticated() bool {
	return c.State() == StateAuthenticated
}

// CurrentUser returns the authenticated user, or nil
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Subscribe registers fn to run after every state transition
func (c *Controller) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) transition(state State, user *models.User) {
	c.mu.Lock()
	c.state = state
	c.user = user
	subs := make([]func(), len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
