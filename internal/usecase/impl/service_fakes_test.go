package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/BrayanOfficiel/juice-finder/internal/domain/entity"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/repository"
	"github.com/BrayanOfficiel/juice-finder/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEstablishmentRepo is an in-memory EstablishmentRepository keyed by
// source id, enough to exercise the sync and search flows without a database.
type fakeEstablishmentRepo struct {
	store  map[string]*entity.Establishment
	nextID int64

	searchCalls   []*entity.SearchQuery
	searchResults []*entity.Establishment
	searchTotal   int64

	regions     []string
	departments []string
	cities      []string

	createErrFor map[string]error
}

func newFakeEstablishmentRepo() *fakeEstablishmentRepo {
	return &fakeEstablishmentRepo{
		store:        make(map[string]*entity.Establishment),
		createErrFor: make(map[string]error),
	}
}

func (f *fakeEstablishmentRepo) Search(_ context.Context, query *entity.SearchQuery) ([]*entity.Establishment, int64, error) {
	f.searchCalls = append(f.searchCalls, query)

	return f.searchResults, f.searchTotal, nil
}

func (f *fakeEstablishmentRepo) FindBySourceID(_ context.Context, sourceID string) (*entity.Establishment, error) {
	est, ok := f.store[sourceID]
	if !ok {
		return nil, repository.ErrEstablishmentNotFound
	}
	cloned := *est

	return &cloned, nil
}

func (f *fakeEstablishmentRepo) Create(_ context.Context, est *entity.Establishment) error {
	if err := f.createErrFor[est.Name]; err != nil {
		return err
	}
	f.nextID++
	est.ID = f.nextID
	cloned := *est
	f.store[est.SourceID] = &cloned

	return nil
}

func (f *fakeEstablishmentRepo) Update(_ context.Context, est *entity.Establishment) error {
	if _, ok := f.store[est.SourceID]; !ok {
		return repository.ErrEstablishmentNotFound
	}
	cloned := *est
	f.store[est.SourceID] = &cloned

	return nil
}

func (f *fakeEstablishmentRepo) Count(context.Context) (int64, error) {
	return int64(len(f.store)), nil
}

func (f *fakeEstablishmentRepo) Recent(_ context.Context, limit int) ([]*entity.Establishment, error) {
	out := make([]*entity.Establishment, 0, len(f.store))
	for _, est := range f.store {
		out = append(out, est)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (f *fakeEstablishmentRepo) DeleteNameless(context.Context) (int64, error) {
	var deleted int64
	for key, est := range f.store {
		if est.Name == "" {
			delete(f.store, key)
			deleted++
		}
	}

	return deleted, nil
}

func (f *fakeEstablishmentRepo) DeleteAll(context.Context) (int64, error) {
	deleted := int64(len(f.store))
	f.store = make(map[string]*entity.Establishment)

	return deleted, nil
}

func (f *fakeEstablishmentRepo) DistinctRegions(context.Context) ([]string, error) {
	return f.regions, nil
}

func (f *fakeEstablishmentRepo) DistinctDepartments(context.Context) ([]string, error) {
	return f.departments, nil
}

func (f *fakeEstablishmentRepo) DistinctCities(context.Context) ([]string, error) {
	return f.cities, nil
}

// fakeSource serves canned pages and exports and records each page fetch.
type fakeSource struct {
	exportRecords []service.SourceRecord
	exportErr     error

	pages       map[int]*service.SourcePage
	pageOffsets []int
	pageErrAt   int
	pageErr     error
	totalCount  int
}

func (f *fakeSource) FetchExport(context.Context) ([]service.SourceRecord, error) {
	if f.exportErr != nil {
		return nil, f.exportErr
	}

	return f.exportRecords, nil
}

func (f *fakeSource) FetchPage(_ context.Context, _, offset int) (*service.SourcePage, error) {
	f.pageOffsets = append(f.pageOffsets, offset)
	if f.pageErr != nil && offset == f.pageErrAt {
		return nil, f.pageErr
	}
	if page, ok := f.pages[offset]; ok {
		return page, nil
	}

	return &service.SourcePage{TotalCount: f.totalCount}, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) List(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return repository.ErrUsernameTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	cloned := *user
	f.users[user.ID] = &cloned

	return nil
}

// fakeHasher marks hashes with a prefix instead of doing real bcrypt work.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type pairKey struct {
	userID          int64
	establishmentID int64
}

// fakeBookmarkRepo is an in-memory BookmarkRepository.
type fakeBookmarkRepo struct {
	pairs     map[pairKey]*entity.Bookmark
	nextID    int64
	createErr error
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{pairs: make(map[pairKey]*entity.Bookmark)}
}

func (f *fakeBookmarkRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Bookmark, error) {
	out := make([]*entity.Bookmark, 0, len(f.pairs))
	for key, bookmark := range f.pairs {
		if key.userID == userID {
			out = append(out, bookmark)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	return out, nil
}

func (f *fakeBookmarkRepo) Create(_ context.Context, bookmark *entity.Bookmark) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := pairKey{bookmark.UserID, bookmark.EstablishmentID}
	if _, ok := f.pairs[key]; ok {
		return repository.ErrBookmarkExists
	}
	f.nextID++
	bookmark.ID = f.nextID
	cloned := *bookmark
	f.pairs[key] = &cloned

	return nil
}

func (f *fakeBookmarkRepo) Delete(_ context.Context, userID, establishmentID int64) error {
	key := pairKey{userID, establishmentID}
	if _, ok := f.pairs[key]; !ok {
		return repository.ErrBookmarkNotFound
	}
	delete(f.pairs, key)

	return nil
}

// fakeArchiveRepo is an in-memory ArchiveRepository.
type fakeArchiveRepo struct {
	pairs     map[pairKey]*entity.Archive
	nextID    int64
	createErr error
}

func newFakeArchiveRepo() *fakeArchiveRepo {
	return &fakeArchiveRepo{pairs: make(map[pairKey]*entity.Archive)}
}

func (f *fakeArchiveRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Archive, error) {
	out := make([]*entity.Archive, 0, len(f.pairs))
	for key, archive := range f.pairs {
		if key.userID == userID {
			out = append(out, archive)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	return out, nil
}

func (f *fakeArchiveRepo) Create(_ context.Context, archive *entity.Archive) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := pairKey{archive.UserID, archive.EstablishmentID}
	if _, ok := f.pairs[key]; ok {
		return repository.ErrArchiveExists
	}
	f.nextID++
	archive.ID = f.nextID
	cloned := *archive
	f.pairs[key] = &cloned

	return nil
}

func (f *fakeArchiveRepo) Delete(_ context.Context, userID, establishmentID int64) error {
	key := pairKey{userID, establishmentID}
	if _, ok := f.pairs[key]; !ok {
		return repository.ErrArchiveNotFound
	}
	delete(f.pairs, key)

	return nil
}
