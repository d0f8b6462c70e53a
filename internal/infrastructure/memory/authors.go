package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/domains/author/repository"
	"library-backend/internal/shared/pagination"
	"library-backend/pkg/identity"
)

type AuthorRepository struct {
	mu      sync.RWMutex
	authors map[string]*model.Author
}

var _ repository.AuthorsRepository = (*AuthorRepository)(nil)

func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{authors: make(map[string]*model.Author)}
}

func (r *AuthorRepository) Create(_ context.Context, a *model.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authors[a.ID().String()] = cloneAuthor(a)
	return nil
}

func (r *AuthorRepository) FindByID(_ context.Context, id identity.UniqueID) (*model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.authors[id.String()]
	if !ok {
		return nil, nil
	}
	return cloneAuthor(a), nil
}

func (r *AuthorRepository) FetchAuthors(_ context.Context, params pagination.Params) ([]*model.Author, error) {
	r.mu.RLock()
	all := make([]*model.Author, 0, len(r.authors))
	for _, a := range r.authors {
		all = append(all, cloneAuthor(a))
	}
	r.mu.RUnlock()

	less := authorLess(params.SortBy, params.Descending())
	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
	return page(all, params), nil
}

func (r *AuthorRepository) Update(_ context.Context, a *model.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.authors[a.ID().String()]; !ok {
		return ErrNotStored
	}
	r.authors[a.ID().String()] = cloneAuthor(a)
	return nil
}

func (r *AuthorRepository) Delete(_ context.Context, a *model.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.authors, a.ID().String())
	return nil
}

func (r *AuthorRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.authors)
}

// namesMatching returns the ids of authors whose name contains substr, ignoring case
func (r *AuthorRepository) namesMatching(substr string) map[string]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make(map[string]struct{})
	needle := strings.ToLower(substr)
	for id, a := range r.authors {
		if strings.Contains(strings.ToLower(a.Name()), needle) {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// authorLess orders by the sort key, then by ascending id so the order is total
func authorLess(sortBy string, desc bool) func(a, b *model.Author) bool {
	return func(a, b *model.Author) bool {
		var cmp int
		switch sortBy {
		case "name":
			cmp = strings.Compare(a.Name(), b.Name())
		case "birthDate":
			cmp = a.BirthDate().Compare(b.BirthDate())
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

func cloneAuthor(a *model.Author) *model.Author {
	return model.RestoreAuthor(a.ID(), model.AuthorProps{
		Name:      a.Name(),
		Bio:       a.Bio(),
		BirthDate: a.BirthDate(),
	}, a.CreatedAt(), a.UpdatedAt())
}
