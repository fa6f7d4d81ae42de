package bookmark

import "errors"

var (
	ErrInvalidID = errors.New("bookmark: invalid id")
	ErrPersist   = errors.New("bookmark: persist failed")
)
