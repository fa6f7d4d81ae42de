package analytics

import (
	"fmt"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"github.com/shopspring/decimal"
)

var trendLabels = []string{"Jan", "Feb", "Mar", "Apr", "May"}

type departmentAccumulator struct {
	dept       employee.Department
	count      int
	ratingSum  int
	bookmarked int
}

// Aggregate は社員一覧とブックマーク集合から集計結果を計算します。
//
// 社員が 0 件の場合は平均値が定義できないため ErrNoData を返します。
// 部署は一覧中の初出順に並びます。
func Aggregate(employees []employee.Employee, bookmarkIDs []int) (*Snapshot, error) {
	if len(employees) == 0 {
		return nil, ErrNoData
	}

	bookmarked := make(map[int]struct{}, len(bookmarkIDs))
	for _, id := range bookmarkIDs {
		bookmarked[id] = struct{}{}
	}

	var (
		order     []*departmentAccumulator
		byDept    = map[employee.Department]*departmentAccumulator{}
		histogram [employee.MaxRating + 1]int
		ratingSum int
		high      int
	)

	for _, e := range employees {
		acc, ok := byDept[e.Department]
		if !ok {
			acc = &departmentAccumulator{dept: e.Department}
			byDept[e.Department] = acc
			order = append(order, acc)
		}
		acc.count++
		acc.ratingSum += e.Rating
		if _, ok := bookmarked[e.ID]; ok {
			acc.bookmarked++
		}

		if e.Rating >= employee.MinRating && e.Rating <= employee.MaxRating {
			histogram[e.Rating]++
		}
		ratingSum += e.Rating
		if e.IsHighPerformer() {
			high++
		}
	}

	perDept := make([]DepartmentStats, 0, len(order))
	for _, acc := range order {
		perDept = append(perDept, DepartmentStats{
			Department:      acc.dept,
			EmployeeCount:   acc.count,
			AverageRating:   roundedMean(acc.ratingSum, acc.count),
			BookmarkedCount: acc.bookmarked,
		})
	}

	buckets := make([]RatingBucket, 0, employee.MaxRating)
	for r := employee.MinRating; r <= employee.MaxRating; r++ {
		buckets = append(buckets, RatingBucket{Rating: r, Label: ratingLabel(r), Count: histogram[r]})
	}

	return &Snapshot{
		PerDepartment:   perDept,
		RatingHistogram: buckets,
		Totals: Totals{
			EmployeeCount:      len(employees),
			AverageRating:      roundedMean(ratingSum, len(employees)),
			BookmarkCount:      len(bookmarked),
			HighPerformerCount: high,
		},
		BookmarkTrend: bookmarkTrend(len(bookmarked)),
	}, nil
}

// roundedMean は小数第 1 位へ四捨五入した平均を返します。count は 1 以上であること。
func roundedMean(sum, count int) float64 {
	mean := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count))).Round(1)
	f, _ := mean.Float64()
	return f
}

func ratingLabel(r int) string {
	if r == 1 {
		return "1 Star"
	}
	return fmt.Sprintf("%d Stars", r)
}

// bookmarkTrend は現在の件数に 0.2 刻みの係数を掛けて切り捨てた 5 点を返します。
func bookmarkTrend(total int) []TrendPoint {
	points := make([]TrendPoint, 0, len(trendLabels))
	for i, label := range trendLabels {
		points = append(points, TrendPoint{Label: label, Count: total * (i + 1) / len(trendLabels)})
	}
	return points
}
