package bookmark

import "context"

// StorageKey はブックマーク集合を保存するキーです。
const StorageKey = "hrDashboardBookmarks"

// Storage はクライアントローカルな永続キーバリューストアの抽象です。
type Storage interface {
	// Get はキーの値を返します。キーが存在しない場合 ok は false です。
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
