package employee

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID        = errors.New("employee: invalid id")
	ErrInvalidPredicate = errors.New("employee: invalid filter predicate")
	ErrEmployeeNotFound = errors.New("employee: not found")

	// ErrTransport は people-data source へ到達できなかったことを表します。
	ErrTransport = errors.New("employee: people source unreachable")
)

// UpstreamStatusError は people-data source が成功以外のステータスを返したことを表します。
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("employee: people source returned status %d", e.StatusCode)
}
