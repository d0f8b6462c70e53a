package either_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"library-backend/pkg/either"
)

func TestLeft(t *testing.T) {
	failure := errors.New("boom")
	e := either.Left[error, int](failure)

	assert.True(t, e.IsLeft())
	assert.False(t, e.IsRight())
	assert.Equal(t, failure, e.LeftValue())
	assert.Zero(t, e.RightValue())
}

func TestRight(t *testing.T) {
	e := either.Right[error, int](42)

	assert.True(t, e.IsRight())
	assert.False(t, e.IsLeft())
	assert.Equal(t, 42, e.RightValue())
	assert.Nil(t, e.LeftValue())
}

func TestZeroValueIsRight(t *testing.T) {
	var e either.Either[error, string]

	assert.True(t, e.IsRight())
	assert.Empty(t, e.RightValue())
}

func TestFold(t *testing.T) {
	onLeft := func(err error) string { return "left:" + err.Error() }
	onRight := func(v int) string { return "right:" + strconv.Itoa(v) }

	assert.Equal(t, "left:nope", either.Fold(either.Left[error, int](errors.New("nope")), onLeft, onRight))
	assert.Equal(t, "right:7", either.Fold(either.Right[error, int](7), onLeft, onRight))
}
