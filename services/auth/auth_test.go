package auth

import (
	"context"
	"testing"
	"time"

	accountRepo "samvidhansetu/database/repository/account"
	"samvidhansetu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountRepo is an in-memory AccountRepository.
type stubAccountRepo struct {
	accounts []models.Account
}

func (r *stubAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			acct := r.accounts[i]
			return &acct, nil
		}
	}
	return nil, accountRepo.ErrAccountNotFound
}

func (r *stubAccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	for i := range r.accounts {
		if r.accounts[i].Username == username {
			acct := r.accounts[i]
			return &acct, nil
		}
	}
	return nil, nil
}

func (r *stubAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	for i := range r.accounts {
		if r.accounts[i].Email == email {
			acct := r.accounts[i]
			return &acct, nil
		}
	}
	return nil, nil
}

func (r *stubAccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	out := make([]models.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *stubAccountRepo) Create(ctx context.Context, account *models.Account) error {
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *stubAccountRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.accounts)), nil
}

func (r *stubAccountRepo) PushNotification(ctx context.Context, id, text string) (*models.Account, error) {
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts[i].Notifications = append([]string{text}, r.accounts[i].Notifications...)
			acct := r.accounts[i]
			return &acct, nil
		}
	}
	return nil, accountRepo.ErrAccountNotFound
}

// memorySessionStore is an in-memory SessionStore.
type memorySessionStore struct {
	sessions map[string]models.SessionProfile
	tokens   map[string]string
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{
		sessions: make(map[string]models.SessionProfile),
		tokens:   make(map[string]string),
	}
}

func (s *memorySessionStore) Save(ctx context.Context, profile models.SessionProfile) error {
	s.sessions[profile.ID] = profile
	return nil
}

func (s *memorySessionStore) Get(ctx context.Context, userID string) (*models.SessionProfile, error) {
	profile, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, userID string) error {
	delete(s.sessions, userID)
	return nil
}

func (s *memorySessionStore) CacheToken(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	s.tokens[userID] = tokenHash
	return nil
}

func (s *memorySessionStore) ClearToken(ctx context.Context, userID string) error {
	delete(s.tokens, userID)
	return nil
}

func newTestAuthService() (*DefaultAuthService, *stubAccountRepo, *memorySessionStore) {
	repo := &stubAccountRepo{}
	store := newMemorySessionStore()
	return &DefaultAuthService{Repo: repo, Sessions: store}, repo, store
}

func TestSignUpFirstAccountIsAdmin(t *testing.T) {
	svc, repo, store := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, "asha", "asha@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, []string{WelcomeNotification}, resp.User.Notifications)
	assert.NotEmpty(t, resp.Token)

	// A session is open and the password is never stored in the clear.
	session, err := svc.CurrentSession(ctx, resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "asha", session.Username)

	require.Len(t, repo.accounts, 1)
	assert.NotEqual(t, "secret123", repo.accounts[0].PasswordHash)
	assert.NotEmpty(t, store.tokens[resp.User.ID])
}

func TestSignUpLaterAccountsAreRegularUsers(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	resp, err := svc.SignUp(ctx, "bina", "bina@example.com", "secret456")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, resp.User.Role)
}

func TestSignUpRejectsDuplicates(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "asha", "other@example.com", "secret456")
	assert.ErrorIs(t, err, ErrAccountExists)

	_, err = svc.SignUp(ctx, "other", "asha@example.com", "secret456")
	assert.ErrorIs(t, err, ErrAccountExists)

	// Failed registrations leave the account list untouched.
	assert.Len(t, repo.accounts, 1)
}

func TestSignUpRequiresAllFields(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "", "asha@example.com", "secret123")
	assert.Error(t, err)
	_, err = svc.SignUp(ctx, "asha", "", "secret123")
	assert.Error(t, err)
	_, err = svc.SignUp(ctx, "asha", "asha@example.com", "")
	assert.Error(t, err)
}

func TestSignInVerifiesCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	signup, err := svc.SignUp(ctx, "asha", "asha@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, signup.User.ID))

	resp, err := svc.SignIn(ctx, "asha", "secret123")
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.SignIn(ctx, "asha", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutIsIdempotent(t *testing.T) {
	svc, _, store := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, "asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, resp.User.ID))
	require.NoError(t, svc.SignOut(ctx, resp.User.ID))

	session, err := svc.CurrentSession(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Empty(t, store.tokens[resp.User.ID])
}

func TestAppendNotificationPrependsAndRefreshesSession(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, "asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	session, err := svc.AppendNotification(ctx, resp.User.ID, "New law added: Theft (Criminal Law)")
	require.NoError(t, err)
	require.NotNil(t, session)

	// Newest first, welcome message pushed down.
	assert.Equal(t, []string{"New law added: Theft (Criminal Law)", WelcomeNotification}, session.Notifications)
	assert.Equal(t, session.Notifications, repo.accounts[0].Notifications)

	// The refreshed projection is also what the session store now holds.
	stored, err := svc.CurrentSession(ctx, resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, session.Notifications, stored.Notifications)
}

func TestAppendNotificationWithoutSession(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, "asha", "asha@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, resp.User.ID))

	session, err := svc.AppendNotification(ctx, resp.User.ID, "Law updated: Theft (Criminal Law)")
	require.NoError(t, err)
	assert.Nil(t, session)

	// The notification still lands on the stored account.
	assert.Equal(t, "Law updated: Theft (Criminal Law)", repo.accounts[0].Notifications[0])
}

func TestAppendNotificationUnknownAccount(t *testing.T) {
	svc, _, _ := newTestAuthService()

	session, err := svc.AppendNotification(context.Background(), "user-missing", "text")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestGetProfileReadsStoreOfRecord(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, "asha", "asha@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, resp.User.ID))

	// Signed out, but the account projection is still readable.
	profile, err := svc.GetProfile(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha", profile.Username)
}
