package impl

import (
	"context"
	"testing"

	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(repo *fakeUserRepo, hasher *fakeHasher) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo: repo,
		Hasher:   hasher,
		Logger:   discardLogger(),
	})
}

func TestUserService_Create_WithoutPassword(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), &fakeHasher{})

	summary, err := svc.Create(context.Background(), "mamie", "")
	require.NoError(t, err)

	assert.Equal(t, "mamie", summary.Username)
	assert.False(t, summary.HasPassword)
	assert.NotZero(t, summary.ID)
}

func TestUserService_Create_WithPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, &fakeHasher{})

	summary, err := svc.Create(context.Background(), "papa", "secret")
	require.NoError(t, err)
	assert.True(t, summary.HasPassword)

	// The stored value is the hash, never the plaintext.
	user, err := repo.FindByID(context.Background(), summary.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret", user.PasswordHash)
}

func TestUserService_Create_TrimsAndRejectsEmptyUsername(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), &fakeHasher{})

	_, err := svc.Create(context.Background(), "   ", "")
	assert.ErrorIs(t, err, domainerrors.ErrUsernameRequired)

	summary, err := svc.Create(context.Background(), "  tonton  ", "")
	require.NoError(t, err)
	assert.Equal(t, "tonton", summary.Username)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), &fakeHasher{})

	_, err := svc.Create(context.Background(), "mamie", "")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "mamie", "")
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserService_Create_HashFailure(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), &fakeHasher{hashErr: errors.New("cost too high")})

	_, err := svc.Create(context.Background(), "papa", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_PasswordlessProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, &fakeHasher{})

	summary, err := svc.Create(context.Background(), "mamie", "")
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), summary.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "mamie", session.Username)

	// A password supplied to a password-less profile is ignored.
	session, err = svc.Login(context.Background(), summary.ID, "anything")
	require.NoError(t, err)
	assert.Equal(t, "mamie", session.Username)
}

func TestUserService_Login_PasswordProtectedProfile(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), &fakeHasher{})

	summary, err := svc.Create(context.Background(), "papa", "secret")
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), summary.ID, "secret")
	require.NoError(t, err)
	assert.Equal(t, summary.ID, session.UserID)

	_, err = svc.Login(context.Background(), summary.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordRequired)

	_, err = svc.Login(context.Background(), summary.ID, "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
}

func TestUserService_Login_UnknownProfile(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), &fakeHasher{})

	_, err := svc.Login(context.Background(), 404, "")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_List_OldestFirstWithoutHashes(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), &fakeHasher{})

	_, err := svc.Create(context.Background(), "mamie", "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "papa", "secret")
	require.NoError(t, err)

	summaries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "mamie", summaries[0].Username)
	assert.False(t, summaries[0].HasPassword)
	assert.Equal(t, "papa", summaries[1].Username)
	assert.True(t, summaries[1].HasPassword)
}
