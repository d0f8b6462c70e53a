package model

import (
	"time"

	"library-backend/pkg/identity"
)

type Author struct {
	id        identity.UniqueID
	name      string
	bio       string
	birthDate time.Time
	createdAt time.Time
	updatedAt time.Time
}

type AuthorProps struct {
	Name      string
	Bio       string
	BirthDate time.Time
}

// NewAuthor creates an author with a generated identity
func NewAuthor(props AuthorProps) *Author {
	now := time.Now().UTC()
	return &Author{
		id:        identity.New(),
		name:      props.Name,
		bio:       props.Bio,
		birthDate: props.BirthDate,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreAuthor rebuilds an author read back from storage
func RestoreAuthor(id identity.UniqueID, props AuthorProps, createdAt, updatedAt time.Time) *Author {
	return &Author{
		id:        id,
		name:      props.Name,
		bio:       props.Bio,
		birthDate: props.BirthDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Author) ID() identity.UniqueID { return a.id }
func (a *Author) Name() string          { return a.name }
func (a *Author) Bio() string           { return a.bio }
func (a *Author) BirthDate() time.Time  { return a.birthDate }
func (a *Author) CreatedAt() time.Time  { return a.createdAt }
func (a *Author) UpdatedAt() time.Time  { return a.updatedAt }

func (a *Author) Rename(name string) {
	a.name = name
	a.touch()
}

func (a *Author) UpdateBio(bio string) {
	a.bio = bio
	a.touch()
}

func (a *Author) RescheduleBirthDate(birthDate time.Time) {
	a.birthDate = birthDate
	a.touch()
}

// Replace overwrites every editable field at once
func (a *Author) Replace(props AuthorProps) {
	a.name = props.Name
	a.bio = props.Bio
	a.birthDate = props.BirthDate
	a.touch()
}

func (a *Author) touch() {
	a.updatedAt = time.Now().UTC()
}
