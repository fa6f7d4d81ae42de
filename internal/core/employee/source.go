package employee

import "context"

// DefaultPageSize は 1 回の取得で要求するレコード数です。
const DefaultPageSize = 20

// Source は people-data source の抽象です。
//
// 実装は通信失敗を ErrTransport でラップし、成功以外のステータスを *UpstreamStatusError として返します。
type Source interface {
	FetchUsers(ctx context.Context, limit int) ([]RawUser, error)
}
