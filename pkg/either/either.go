package either

// Either holds exactly one of two values: a Left (failure) or a Right (success).
// Use cases return expected domain failures as Left and keep the Go error
// return for infrastructure faults.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left builds a failure value
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isLeft: true}
}

// Right builds a success value
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value}
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

// LeftValue returns the failure, or the zero value of L when e is a Right
func (e Either[L, R]) LeftValue() L {
	return e.left
}

// RightValue returns the success, or the zero value of R when e is a Left
func (e Either[L, R]) RightValue() R {
	return e.right
}

// Fold calls exactly one of the two functions depending on the variant
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isLeft {
		return onLeft(e.left)
	}
	return onRight(e.right)
}
