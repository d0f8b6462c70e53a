package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/repository"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/identity"
)

// BookRepository resolves the author name filter through the author store
// it was built with, the same way the SQL adapter uses a subquery.
type BookRepository struct {
	mu      sync.RWMutex
	books   map[string]*model.Book
	authors *AuthorRepository
}

var _ repository.BooksRepository = (*BookRepository)(nil)

func NewBookRepository(authors *AuthorRepository) *BookRepository {
	return &BookRepository{
		books:   make(map[string]*model.Book),
		authors: authors,
	}
}

func (r *BookRepository) Create(_ context.Context, b *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[b.ID().String()] = cloneBook(b)
	return nil
}

func (r *BookRepository) FindByID(_ context.Context, id identity.UniqueID) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id.String()]
	if !ok {
		return nil, nil
	}
	return cloneBook(b), nil
}

func (r *BookRepository) FindByAuthorID(_ context.Context, authorID identity.UniqueID) ([]*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]*model.Book, 0)
	for _, b := range r.books {
		if b.AuthorID().Equals(authorID) {
			books = append(books, cloneBook(b))
		}
	}
	sort.SliceStable(books, func(i, j int) bool { return bookLess("createdAt", false)(books[i], books[j]) })
	return books, nil
}

func (r *BookRepository) FetchBooks(_ context.Context, params pagination.Params) ([]*model.Book, error) {
	var authorIDs map[string]struct{}
	if params.AuthorName != "" && r.authors != nil {
		authorIDs = r.authors.namesMatching(params.AuthorName)
	}
	title := strings.ToLower(params.Title)

	r.mu.RLock()
	matches := make([]*model.Book, 0, len(r.books))
	for _, b := range r.books {
		if title != "" && !strings.Contains(strings.ToLower(b.Title()), title) {
			continue
		}
		if params.AuthorName != "" {
			if _, ok := authorIDs[b.AuthorID().String()]; !ok {
				continue
			}
		}
		matches = append(matches, cloneBook(b))
	}
	r.mu.RUnlock()

	less := bookLess(params.SortBy, params.Descending())
	sort.SliceStable(matches, func(i, j int) bool { return less(matches[i], matches[j]) })
	return page(matches, params), nil
}

func (r *BookRepository) Update(_ context.Context, b *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ID().String()]; !ok {
		return ErrNotStored
	}
	r.books[b.ID().String()] = cloneBook(b)
	return nil
}

func (r *BookRepository) Delete(_ context.Context, b *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.books, b.ID().String())
	return nil
}

func (r *BookRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}

func bookLess(sortBy string, desc bool) func(a, b *model.Book) bool {
	return func(a, b *model.Book) bool {
		var cmp int
		switch sortBy {
		case "title":
			cmp = strings.Compare(a.Title(), b.Title())
		case "publishDate":
			cmp = a.PublishDate().Compare(b.PublishDate())
		case "updatedAt":
			cmp = a.UpdatedAt().Compare(b.UpdatedAt())
		default:
			cmp = a.CreatedAt().Compare(b.CreatedAt())
		}
		if desc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		return a.ID().String() < b.ID().String()
	}
}

func cloneBook(b *model.Book) *model.Book {
	return model.RestoreBook(b.ID(), model.BookProps{
		Title:       b.Title(),
		Description: b.Description(),
		PublishDate: b.PublishDate(),
		AuthorID:    b.AuthorID(),
	}, b.CreatedAt(), b.UpdatedAt())
}
