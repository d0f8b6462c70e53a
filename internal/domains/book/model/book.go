package model

import (
	"time"

	"library-backend/pkg/identity"
)

// Book belongs to exactly one author. The link is checked by the use cases,
// not by storage.
type Book struct {
	id          identity.UniqueID
	title       string
	description string
	publishDate time.Time
	authorID    identity.UniqueID
	createdAt   time.Time
	updatedAt   time.Time
}

type BookProps struct {
	Title       string
	Description string
	PublishDate time.Time
	AuthorID    identity.UniqueID
}

func NewBook(props BookProps) *Book {
	now := time.Now().UTC()
	return &Book{
		id:          identity.New(),
		title:       props.Title,
		description: props.Description,
		publishDate: props.PublishDate,
		authorID:    props.AuthorID,
		createdAt:   now,
		updatedAt:   now,
	}
}

func RestoreBook(id identity.UniqueID, props BookProps, createdAt, updatedAt time.Time) *Book {
	return &Book{
		id:          id,
		title:       props.Title,
		description: props.Description,
		publishDate: props.PublishDate,
		authorID:    props.AuthorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Book) ID() identity.UniqueID       { return b.id }
func (b *Book) Title() string               { return b.title }
func (b *Book) Description() string         { return b.description }
func (b *Book) PublishDate() time.Time      { return b.publishDate }
func (b *Book) AuthorID() identity.UniqueID { return b.authorID }
func (b *Book) CreatedAt() time.Time        { return b.createdAt }
func (b *Book) UpdatedAt() time.Time        { return b.updatedAt }

func (b *Book) Retitle(title string) {
	b.title = title
	b.touch()
}

func (b *Book) Describe(description string) {
	b.description = description
	b.touch()
}

func (b *Book) ReschedulePublishDate(publishDate time.Time) {
	b.publishDate = publishDate
	b.touch()
}

// AssignAuthor does not check that the author exists
func (b *Book) AssignAuthor(authorID identity.UniqueID) {
	b.authorID = authorID
	b.touch()
}

func (b *Book) Replace(props BookProps) {
	b.title = props.Title
	b.description = props.Description
	b.publishDate = props.PublishDate
	b.authorID = props.AuthorID
	b.touch()
}

func (b *Book) touch() {
	b.updatedAt = time.Now().UTC()
}
