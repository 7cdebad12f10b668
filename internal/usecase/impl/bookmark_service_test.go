package impl

import (
	"context"
	"testing"

	domainerrors "github.com/BrayanOfficiel/juice-finder/internal/domain/errors"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBookmarkService(bookmarks *fakeBookmarkRepo, archives *fakeArchiveRepo) usecase.BookmarkUsecase {
	return NewBookmarkService(BookmarkServiceParams{
		BookmarkRepo: bookmarks,
		ArchiveRepo:  archives,
		Logger:       discardLogger(),
	})
}

func TestBookmarkService_AddAndListBookmarks(t *testing.T) {
	svc := newTestBookmarkService(newFakeBookmarkRepo(), newFakeArchiveRepo())

	bookmark, err := svc.AddBookmark(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.NotZero(t, bookmark.ID)

	_, err = svc.AddBookmark(context.Background(), 1, 11)
	require.NoError(t, err)

	// Another user's list stays separate.
	_, err = svc.AddBookmark(context.Background(), 2, 10)
	require.NoError(t, err)

	list, err := svc.Bookmarks(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBookmarkService_AddBookmark_Duplicate(t *testing.T) {
	svc := newTestBookmarkService(newFakeBookmarkRepo(), newFakeArchiveRepo())

	_, err := svc.AddBookmark(context.Background(), 1, 10)
	require.NoError(t, err)

	_, err = svc.AddBookmark(context.Background(), 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkExists)
}

func TestBookmarkService_AddBookmark_UnknownEstablishment(t *testing.T) {
	bookmarks := newFakeBookmarkRepo()
	bookmarks.createErr = repository.ErrEstablishmentNotFound
	svc := newTestBookmarkService(bookmarks, newFakeArchiveRepo())

	_, err := svc.AddBookmark(context.Background(), 1, 999)
	assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound)
}

func TestBookmarkService_RemoveBookmark(t *testing.T) {
	svc := newTestBookmarkService(newFakeBookmarkRepo(), newFakeArchiveRepo())

	_, err := svc.AddBookmark(context.Background(), 1, 10)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBookmark(context.Background(), 1, 10))

	err = svc.RemoveBookmark(context.Background(), 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkNotFound)
}

func TestBookmarkService_ArchiveIsIndependentFromBookmarks(t *testing.T) {
	svc := newTestBookmarkService(newFakeBookmarkRepo(), newFakeArchiveRepo())

	_, err := svc.AddBookmark(context.Background(), 1, 10)
	require.NoError(t, err)

	// The same establishment can sit in both lists at once.
	_, err = svc.AddArchive(context.Background(), 1, 10)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBookmark(context.Background(), 1, 10))

	archived, err := svc.Archived(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, archived, 1)
}

func TestBookmarkService_ArchiveConflictAndMissing(t *testing.T) {
	svc := newTestBookmarkService(newFakeBookmarkRepo(), newFakeArchiveRepo())

	_, err := svc.AddArchive(context.Background(), 1, 10)
	require.NoError(t, err)

	_, err = svc.AddArchive(context.Background(), 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrArchiveExists)

	err = svc.RemoveArchive(context.Background(), 1, 999)
	assert.ErrorIs(t, err, domainerrors.ErrArchiveNotFound)
}
