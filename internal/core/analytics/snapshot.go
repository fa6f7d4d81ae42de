package analytics

import (
	"errors"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
)

// ErrNoData は集計対象の社員が存在しないことを表します。
var ErrNoData = errors.New("analytics: no employees to aggregate")

// DepartmentStats は部署ごとの集計値です。
type DepartmentStats struct {
	Department      employee.Department
	EmployeeCount   int
	AverageRating   float64
	BookmarkedCount int
}

// RatingBucket は評価ヒストグラムの 1 区間です。
type RatingBucket struct {
	Rating int
	Label  string
	Count  int
}

type Totals struct {
	EmployeeCount      int
	AverageRating      float64
	BookmarkCount      int
	HighPerformerCount int
}

// TrendPoint はブックマーク推移の表示用近似値です。実際の履歴ではありません。
type TrendPoint struct {
	Label string
	Count int
}

// Snapshot はある時点の社員一覧とブックマーク集合から計算した集計結果です。
type Snapshot struct {
	PerDepartment   []DepartmentStats
	RatingHistogram []RatingBucket
	Totals          Totals
	BookmarkTrend   []TrendPoint
}
