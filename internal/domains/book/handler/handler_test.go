package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-backend/internal/domains/author/model"
	"library-backend/internal/domains/book/handler"
	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/service"
	usermodel "library-backend/internal/domains/user/model"
	"library-backend/internal/infrastructure/memory"
	"library-backend/internal/infrastructure/token"
	"library-backend/internal/shared/middleware"
	"library-backend/pkg/jwt"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type fixture struct {
	router      *gin.Engine
	authors     *memory.AuthorRepository
	books       *memory.BookRepository
	author      *authormodel.Author
	adminToken  string
	commonToken string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	users := memory.NewUserRepository()
	authors := memory.NewAuthorRepository()
	books := memory.NewBookRepository(authors)

	admin := usermodel.NewUser(usermodel.UserProps{Name: "Admin", Email: "admin@x.io", Role: usermodel.RoleAdmin})
	common := usermodel.NewUser(usermodel.UserProps{Name: "Reader", Email: "reader@x.io", Role: usermodel.RoleCommon})
	require.NoError(t, users.Create(ctx, admin))
	require.NoError(t, users.Create(ctx, common))

	author := authormodel.NewAuthor(authormodel.AuthorProps{
		Name:      "Machado de Assis",
		BirthDate: time.Date(1839, 6, 21, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, authors.Create(ctx, author))

	manager := jwt.NewManager(jwt.Config{Secret: "test-secret", Issuer: "library-backend"})
	verifier := token.NewEncrypter(manager)
	h := handler.NewBookHandler(service.NewBookService(books, authors, users))

	r := gin.New()
	anyRole := middleware.RequireRoles(verifier)
	adminOnly := middleware.RequireRoles(verifier, usermodel.RoleAdmin)
	r.GET("/books", anyRole, h.ListBooks)
	r.GET("/books/:id", anyRole, h.GetBook)
	r.POST("/books", adminOnly, h.CreateBook)
	r.PUT("/books/:id", adminOnly, h.EditBook)
	r.DELETE("/books/:id", adminOnly, h.DeleteBook)

	adminTok, err := manager.GenerateAccessToken(admin.ID().String(), admin.Role().String())
	require.NoError(t, err)
	commonTok, err := manager.GenerateAccessToken(common.ID().String(), common.Role().String())
	require.NoError(t, err)

	return fixture{
		router:      r,
		authors:     authors,
		books:       books,
		author:      author,
		adminToken:  adminTok.Value,
		commonToken: commonTok.Value,
	}
}

func (f fixture) do(t *testing.T, method, path, tok string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	raw := []byte{}
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (f fixture) bookBody(title string) map[string]string {
	return map[string]string{
		"title":       title,
		"description": "novel",
		"publishDate": "1899-01-01",
		"authorId":    f.author.ID().String(),
	}
}

func TestCreateBook(t *testing.T) {
	f := newFixture(t)

	w, env := f.do(t, http.MethodPost, "/books", f.adminToken, f.bookBody("Dom Casmurro"))
	require.Equal(t, http.StatusCreated, w.Code)

	var got model.BookResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Dom Casmurro", got.Title)
	assert.Equal(t, "1899-01-01", got.PublishDate)
	assert.Equal(t, f.author.ID().String(), got.AuthorID)

	w, env = f.do(t, http.MethodGet, "/books/"+got.ID, f.commonToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.BookResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, got, fetched)
}

func TestCreateBook_UnknownAuthor(t *testing.T) {
	f := newFixture(t)

	body := f.bookBody("Orphan")
	body["authorId"] = "missing"
	w, env := f.do(t, http.MethodPost, "/books", f.adminToken, body)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RESOURCE_NOT_FOUND", env.Error.Code)
	assert.Equal(t, 0, f.books.Len())
}

func TestCreateBook_CommonForbidden(t *testing.T) {
	f := newFixture(t)

	w, _ := f.do(t, http.MethodPost, "/books", f.commonToken, f.bookBody("Nope"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, f.books.Len())
}

func TestEditAndDeleteBook(t *testing.T) {
	f := newFixture(t)
	book := model.NewBook(model.BookProps{Title: "Draft", PublishDate: time.Now(), AuthorID: f.author.ID()})
	require.NoError(t, f.books.Create(context.Background(), book))
	path := "/books/" + book.ID().String()

	w, _ := f.do(t, http.MethodPut, path, f.adminToken, f.bookBody("Quincas Borba"))
	require.Equal(t, http.StatusNoContent, w.Code)

	stored, err := f.books.FindByID(context.Background(), book.ID())
	require.NoError(t, err)
	assert.Equal(t, "Quincas Borba", stored.Title())

	w, _ = f.do(t, http.MethodDelete, path, f.adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, f.books.Len())

	w, _ = f.do(t, http.MethodDelete, path, f.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBooks_SecondPage(t *testing.T) {
	f := newFixture(t)
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		b := model.NewBook(model.BookProps{
			Title:       fmt.Sprintf("Book %02d", i),
			PublishDate: base.AddDate(0, 0, i),
			AuthorID:    f.author.ID(),
		})
		require.NoError(t, f.books.Create(context.Background(), b))
	}

	w, env := f.do(t, http.MethodGet, "/books?page=2&limit=10&sortBy=title&authorName=machado", f.commonToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list model.BookListResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Page)
	require.Len(t, list.Books, 5)
	assert.Equal(t, "Book 10", list.Books[0].Title)
}
