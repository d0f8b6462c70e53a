package memory

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-backend/internal/domains/author/model"
	bookmodel "library-backend/internal/domains/book/model"
	usermodel "library-backend/internal/domains/user/model"
	userrepo "library-backend/internal/domains/user/repository"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/identity"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	u := usermodel.NewUser(usermodel.UserProps{Name: "Ana", Email: "ana@example.com", PasswordHash: "h", Role: usermodel.RoleAdmin})

	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.FindByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, u.ID().Equals(found.ID()))

	dup := usermodel.NewUser(usermodel.UserProps{Name: "Other", Email: "ana@example.com", Role: usermodel.RoleCommon})
	assert.ErrorIs(t, repo.Create(ctx, dup), userrepo.ErrDuplicateEmail)

	missing, err := repo.FindByID(ctx, identity.From("nope"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	u := usermodel.NewUser(usermodel.UserProps{Name: "Ana", Email: "a@x.io", PasswordHash: "h1", Role: usermodel.RoleCommon})
	require.NoError(t, repo.Create(ctx, u))

	u.ChangePassword("h2")

	stored, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "h1", stored.PasswordHash())

	require.NoError(t, repo.Update(ctx, u))
	stored, err = repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "h2", stored.PasswordHash())
}

func TestAuthorRepositoryFetchSortsAndPages(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthorRepository()
	for _, name := range []string{"Carla", "Ana", "Bruno"} {
		require.NoError(t, repo.Create(ctx, authormodel.NewAuthor(authormodel.AuthorProps{Name: name})))
	}

	got, err := repo.FetchAuthors(ctx, pagination.Params{Page: 1, Limit: 2, SortBy: "name", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name())
	assert.Equal(t, "Bruno", got[1].Name())

	got, err = repo.FetchAuthors(ctx, pagination.Params{Page: 2, Limit: 2, SortBy: "name", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Carla", got[0].Name())

	got, err = repo.FetchAuthors(ctx, pagination.Params{Page: 1, Limit: 1, SortBy: "name", Order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "Carla", got[0].Name())

	got, err = repo.FetchAuthors(ctx, pagination.Params{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	authors := NewAuthorRepository()
	books := NewBookRepository(authors)

	machado := authormodel.NewAuthor(authormodel.AuthorProps{Name: "Machado de Assis"})
	clarice := authormodel.NewAuthor(authormodel.AuthorProps{Name: "Clarice Lispector"})
	require.NoError(t, authors.Create(ctx, machado))
	require.NoError(t, authors.Create(ctx, clarice))

	add := func(title string, author *authormodel.Author) {
		require.NoError(t, books.Create(ctx, bookmodel.NewBook(bookmodel.BookProps{Title: title, AuthorID: author.ID()})))
	}
	add("Dom Casmurro", machado)
	add("Quincas Borba", machado)
	add("A Hora da Estrela", clarice)

	params := pagination.Params{Page: 1, Limit: 10, SortBy: "title", Order: "asc"}

	byTitle := params
	byTitle.Title = "dom"
	got, err := books.FetchBooks(ctx, byTitle)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dom Casmurro", got[0].Title())

	byAuthor := params
	byAuthor.AuthorName = "ASSIS"
	got, err = books.FetchBooks(ctx, byAuthor)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Dom Casmurro", got[0].Title())
	assert.Equal(t, "Quincas Borba", got[1].Title())

	linked, err := books.FindByAuthorID(ctx, clarice.ID())
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "A Hora da Estrela", linked[0].Title())
}

func TestBookRepositorySecondPageSkipsFirstTen(t *testing.T) {
	ctx := context.Background()
	books := NewBookRepository(NewAuthorRepository())
	authorID := identity.New()
	for i := 0; i < 25; i++ {
		title := fmt.Sprintf("Book %02d", i)
		require.NoError(t, books.Create(ctx, bookmodel.NewBook(bookmodel.BookProps{Title: title, AuthorID: authorID})))
	}

	got, err := books.FetchBooks(ctx, pagination.Params{Page: 2, Limit: 10, SortBy: "title", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.Equal(t, "Book 10", got[0].Title())
	assert.Equal(t, "Book 19", got[9].Title())
}

func TestBookRepositoryPagePastEnd(t *testing.T) {
	ctx := context.Background()
	books := NewBookRepository(NewAuthorRepository())
	require.NoError(t, books.Create(ctx, bookmodel.NewBook(bookmodel.BookProps{Title: "Only", AuthorID: identity.New()})))

	got, err := books.FetchBooks(ctx, pagination.Params{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = books.FetchBooks(ctx, pagination.Params{Page: math.MaxInt64 / 50, Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRefreshTokenStore(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore()

	require.NoError(t, store.Save(ctx, "jti-1", "user-1", time.Hour))

	ok, err := store.Consume(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok, "ids are single-use")

	require.NoError(t, store.Save(ctx, "jti-2", "user-1", time.Hour))
	require.NoError(t, store.Revoke(ctx, "jti-2"))
	ok, err = store.Consume(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRefreshTokenStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "jti", "user-1", time.Minute))
	now = now.Add(2 * time.Minute)

	ok, err := store.Consume(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRefreshTokenStoreSavePurgesExpired(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "old", "user-1", time.Minute))
	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, "new", "user-1", time.Minute))

	assert.Equal(t, 1, store.Len())
}
