package law

import (
	"context"
	"fmt"
	"testing"
	"time"

	lawRepo "samvidhansetu/database/repository/law"
	"samvidhansetu/models"
	"samvidhansetu/services/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLawRepo is an in-memory LawRepository.
type stubLawRepo struct {
	laws []models.Law
}

func (r *stubLawRepo) GetAll(ctx context.Context) ([]models.Law, error) {
	out := make([]models.Law, len(r.laws))
	copy(out, r.laws)
	return out, nil
}

func (r *stubLawRepo) GetByID(ctx context.Context, id string) (*models.Law, error) {
	for i := range r.laws {
		if r.laws[i].ID == id {
			l := r.laws[i]
			return &l, nil
		}
	}
	return nil, lawRepo.ErrLawNotFound
}

func (r *stubLawRepo) Search(ctx context.Context, query string, lang models.Language) ([]models.Law, error) {
	return lawRepo.FilterLaws(r.laws, query, lang), nil
}

func (r *stubLawRepo) Create(ctx context.Context, law *models.Law) error {
	law.ID = fmt.Sprintf("law-%d", len(r.laws)+1)
	now := time.Now().UTC()
	law.CreatedAt = now
	law.UpdatedAt = now
	r.laws = append(r.laws, *law)
	return nil
}

func (r *stubLawRepo) Update(ctx context.Context, law *models.Law) error {
	for i := range r.laws {
		if r.laws[i].ID == law.ID {
			law.CreatedAt = r.laws[i].CreatedAt
			law.UpdatedAt = time.Now().UTC()
			r.laws[i] = *law
			return nil
		}
	}
	return lawRepo.ErrLawNotFound
}

func (r *stubLawRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i := range r.laws {
		if r.laws[i].ID == id {
			r.laws = append(r.laws[:i], r.laws[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubLawRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.laws)), nil
}

func (r *stubLawRepo) EnsureSeed(ctx context.Context) error {
	if len(r.laws) == 0 {
		r.laws = lawRepo.SeedLaws()
	}
	return nil
}

// stubAuthService records the notifications delivered to each account.
type stubAuthService struct {
	delivered []string
	session   *models.SessionProfile
}

func (s *stubAuthService) SignUp(ctx context.Context, username, email, password string) (*auth.AuthResponse, error) {
	return nil, nil
}

func (s *stubAuthService) SignIn(ctx context.Context, username, password string) (*auth.AuthResponse, error) {
	return nil, nil
}

func (s *stubAuthService) SignOut(ctx context.Context, userID string) error { return nil }

func (s *stubAuthService) CurrentSession(ctx context.Context, userID string) (*models.SessionProfile, error) {
	return s.session, nil
}

func (s *stubAuthService) GetProfile(ctx context.Context, userID string) (*models.SessionProfile, error) {
	return s.session, nil
}

func (s *stubAuthService) AppendNotification(ctx context.Context, userID, text string) (*models.SessionProfile, error) {
	s.delivered = append(s.delivered, text)
	if s.session == nil {
		return nil, nil
	}
	refreshed := *s.session
	refreshed.Notifications = append([]string{text}, refreshed.Notifications...)
	s.session = &refreshed
	return &refreshed, nil
}

func (s *stubAuthService) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	return nil, nil
}

func newTestLawService() (*DefaultLawService, *stubLawRepo, *stubAuthService) {
	repo := &stubLawRepo{}
	_ = repo.EnsureSeed(context.Background())
	authSvc := &stubAuthService{
		session: &models.SessionProfile{ID: "user-1", Username: "asha", Role: models.RoleAdmin},
	}
	return &DefaultLawService{Repo: repo, Auth: authSvc}, repo, authSvc
}

func TestAddLawCreatesAndNotifies(t *testing.T) {
	svc, repo, authSvc := newTestLawService()
	ctx := context.Background()

	created, session, err := svc.Add(ctx, models.Law{
		Category:    "Criminal Law",
		Title:       "Defamation",
		Explanation: "Whoever harms the reputation of another person may be liable for defamation.",
	}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), count)

	require.Len(t, authSvc.delivered, 1)
	assert.Equal(t, "New law added: Defamation (Criminal Law)", authSvc.delivered[0])

	require.NotNil(t, session)
	assert.Equal(t, authSvc.delivered[0], session.Notifications[0])
}

func TestAddLawValidatesRequiredFields(t *testing.T) {
	svc, repo, authSvc := newTestLawService()
	ctx := context.Background()

	_, _, err := svc.Add(ctx, models.Law{Category: "Criminal Law"}, "user-1")
	assert.Error(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
	assert.Empty(t, authSvc.delivered)
}

func TestAddLawWithoutActorSkipsNotification(t *testing.T) {
	svc, _, authSvc := newTestLawService()

	created, session, err := svc.Add(context.Background(), models.Law{
		Category:    "Criminal Law",
		Title:       "Defamation",
		Explanation: "Whoever harms the reputation of another person may be liable for defamation.",
	}, "")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Nil(t, session)
	assert.Empty(t, authSvc.delivered)
}

func TestUpdateLawNotifies(t *testing.T) {
	svc, repo, authSvc := newTestLawService()
	ctx := context.Background()

	existing, err := repo.GetByID(ctx, "law-2")
	require.NoError(t, err)

	existing.Explanation = "Amended explanation of theft."
	updated, session, err := svc.Update(ctx, *existing, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Amended explanation of theft.", updated.Explanation)

	require.Len(t, authSvc.delivered, 1)
	assert.Equal(t, "Law updated: Theft (Criminal Law)", authSvc.delivered[0])
	require.NotNil(t, session)
}

func TestUpdateUnknownLawFails(t *testing.T) {
	svc, repo, authSvc := newTestLawService()
	ctx := context.Background()

	_, _, err := svc.Update(ctx, models.Law{ID: "law-999", Title: "Ghost"}, "user-1")
	assert.ErrorIs(t, err, lawRepo.ErrLawNotFound)

	// The list is untouched and no notification goes out.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
	assert.Empty(t, authSvc.delivered)
}

func TestDeleteLaw(t *testing.T) {
	svc, repo, authSvc := newTestLawService()
	ctx := context.Background()

	removed, session, err := svc.Delete(ctx, "law-3", "user-1")
	require.NoError(t, err)
	assert.True(t, removed)
	require.NotNil(t, session)

	require.Len(t, authSvc.delivered, 1)
	assert.Equal(t, "Law deleted with ID: law-3", authSvc.delivered[0])

	_, err = repo.GetByID(ctx, "law-3")
	assert.ErrorIs(t, err, lawRepo.ErrLawNotFound)
}

func TestDeleteUnknownLaw(t *testing.T) {
	svc, _, authSvc := newTestLawService()

	removed, session, err := svc.Delete(context.Background(), "law-999", "user-1")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Nil(t, session)
	assert.Empty(t, authSvc.delivered)
}

func TestSearchDelegatesLanguage(t *testing.T) {
	svc, _, _ := newTestLawService()
	ctx := context.Background()

	english, err := svc.Search(ctx, "theft", models.LanguageEnglish)
	require.NoError(t, err)
	assert.NotEmpty(t, english)

	hindi, err := svc.Search(ctx, "चोरी", models.LanguageHindi)
	require.NoError(t, err)
	assert.NotEmpty(t, hindi)
}

func TestCategoriesReturnsFixedSet(t *testing.T) {
	svc, _, _ := newTestLawService()

	categories := svc.Categories()
	assert.Equal(t, models.LawCategories, categories)

	// Mutating the returned slice must not leak into the canonical set.
	categories[0] = "mutated"
	assert.NotEqual(t, "mutated", models.LawCategories[0])
}
