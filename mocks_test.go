package accounts_test

import (
	"context"
	"strings"
	"sync"
	"time"

	accounts "github.com/garbo-works/go-accounts"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// memStore is an in-memory UserStore. It hands out copies so tests observe
// only persisted state, the way a real repository would.
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*accounts.User
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{users: map[uuid.UUID]*accounts.User{}}
}

func notFoundErr() error {
	return goerrors.New("record not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound)
}

func cloneUser(u *accounts.User) *accounts.User {
	out := *u
	out.Roles = append([]string(nil), u.Roles...)
	out.RefreshTokenExpiry = u.RefreshTokenExpiry
	out.PreviousRefreshTokenExpiry = cloneTime(u.PreviousRefreshTokenExpiry)
	out.VerificationCodeExpiry = cloneTime(u.VerificationCodeExpiry)
	out.NewEmailCodeExpiry = cloneTime(u.NewEmailCodeExpiry)
	out.DeletedAt = cloneTime(u.DeletedAt)
	out.ScheduledDeletionDate = cloneTime(u.ScheduledDeletionDate)
	out.LockoutEnd = cloneTime(u.LockoutEnd)
	out.CreatedAt = cloneTime(u.CreatedAt)
	out.UpdatedAt = cloneTime(u.UpdatedAt)
	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// add seeds a user directly, bypassing registration.
func (s *memStore) add(u *accounts.User) *accounts.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.users[u.ID] = cloneUser(u)
	return cloneUser(u)
}

// get returns the persisted state of a user.
func (s *memStore) get(id uuid.UUID) *accounts.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u)
	}
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*accounts.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, notFoundErr()
}

func (s *memStore) GetByEmail(ctx context.Context, email string) (*accounts.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && !u.IsDeleted {
			return cloneUser(u), nil
		}
	}
	return nil, notFoundErr()
}

func (s *memStore) GetByEmailAny(ctx context.Context, email string) (*accounts.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, notFoundErr()
}

func (s *memStore) GetByUsername(ctx context.Context, username string) (*accounts.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, notFoundErr()
}

func (s *memStore) Register(ctx context.Context, user *accounts.User) (*accounts.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, goerrors.New("duplicate email", goerrors.CategoryConflict)
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (s *memStore) Save(ctx context.Context, user *accounts.User) (*accounts.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	if _, ok := s.users[user.ID]; !ok {
		return nil, notFoundErr()
	}
	s.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

// recordingMailer captures outbound mail instead of sending it.
type recordingMailer struct {
	mu       sync.Mutex
	messages []sentMail
	sendErr  error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.messages = append(m.messages, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *recordingMailer) sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.messages...)
}

func (m *recordingMailer) last() *sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return nil
	}
	msg := m.messages[len(m.messages)-1]
	return &msg
}

// capturingSink accumulates activity events.
type capturingSink struct {
	mu     sync.Mutex
	events []accounts.ActivityEvent
}

func (s *capturingSink) Record(ctx context.Context, event accounts.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *capturingSink) byType(typ accounts.ActivityEventType) []accounts.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []accounts.ActivityEvent
	for _, e := range s.events {
		if e.EventType == typ {
			out = append(out, e)
		}
	}
	return out
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestConfig() accounts.Config {
	return accounts.Config{
		SigningKey:          []byte("test-signing-key"),
		Issuer:              "test-issuer",
		Audience:            []string{"test:audience"},
		TokenExpiration:     15 * time.Minute,
		RefreshExpiration:   7 * 24 * time.Hour,
		RefreshGracePeriod:  time.Minute,
		MaxFailedAttempts:   5,
		LockoutDuration:     5 * time.Minute,
		DeletionGracePeriod: 30 * 24 * time.Hour,
		EmailCodeTTL:        30 * time.Minute,
		PasswordCodeTTL:     15 * time.Minute,
	}
}

type testEnv struct {
	store  *memStore
	clock  *fakeClock
	mailer *recordingMailer
	sink   *capturingSink
	tokens *accounts.HMACTokenService
	mgr    *accounts.Accounts
	cfg    accounts.Config
}

func newTestEnv() *testEnv {
	store := newMemStore()
	clock := newFakeClock()
	mailer := &recordingMailer{}
	sink := &capturingSink{}
	cfg := newTestConfig()

	tokens := accounts.NewTokenService(cfg, store, accounts.WithTokenClock(clock.Now))

	mgr := accounts.NewAccounts(store, tokens, cfg).
		WithMailer(mailer).
		WithActivitySink(sink).
		WithClock(clock.Now)

	return &testEnv{
		store:  store,
		clock:  clock,
		mailer: mailer,
		sink:   sink,
		tokens: tokens,
		mgr:    mgr,
		cfg:    cfg,
	}
}

var (
	hashCacheMu sync.Mutex
	hashCache   = map[string]string{}
)

// hashFor memoizes bcrypt hashes so repeated seeding does not pay the full
// hashing cost per test.
func hashFor(password string) string {
	hashCacheMu.Lock()
	defer hashCacheMu.Unlock()
	if h, ok := hashCache[password]; ok {
		return h
	}
	h, err := accounts.HashPassword(password)
	if err != nil {
		panic(err)
	}
	hashCache[password] = h
	return h
}

// seedUser stores a confirmed, active account with the given password.
func (e *testEnv) seedUser(email, password string) *accounts.User {
	hash := hashFor(password)
	return e.store.add(&accounts.User{
		ID:             uuid.New(),
		FirstName:      "Test",
		LastName:       "User",
		Username:       email,
		Email:          email,
		PasswordHash:   hash,
		Roles:          []string{accounts.RoleUser},
		EmailConfirmed: true,
	})
}
