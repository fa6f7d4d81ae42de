package directory

import (
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
)

// Status は Directory の取得状態です。
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Snapshot は同一時点で読み取った Directory の状態です。
type Snapshot struct {
	Status    Status
	Employees []employee.Employee
	Err       string
	LoadedAt  time.Time
}

// Loading は取得中かどうかを返します。
func (s Snapshot) Loading() bool {
	return s.Status == StatusLoading
}

// Ready は社員一覧が利用可能かどうかを返します。
func (s Snapshot) Ready() bool {
	return s.Status == StatusReady
}
