package employee

import (
	"fmt"
	"math/rand/v2"
)

// Rand は評価の乱数源です。*rand.Rand はこのインターフェースを満たします。
type Rand interface {
	// IntN は [0, n) の一様乱数を返します。
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// Enrich は取得順のユーザーレコードから社員を生成します。
//
// 部署は取得順インデックスで固定リストを巡回して割り当て、評価はレコードごとに rng から 1〜5 を引きます。
// 入力は変更しません。rng が nil の場合はプロセス共通の乱数源を使用します。
func Enrich(raw []RawUser, rng Rand) []Employee {
	if rng == nil {
		rng = globalRand{}
	}

	employees := make([]Employee, 0, len(raw))
	for i, u := range raw {
		dept := Departments[i%len(Departments)]
		employees = append(employees, Employee{
			ID:         u.ID,
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			Email:      u.Email,
			Age:        u.Age,
			Phone:      u.Phone,
			Address:    u.Address,
			Image:      u.Image,
			Department: dept,
			Rating:     rng.IntN(MaxRating) + MinRating,
			Bio:        bioFor(dept),
			Projects:   sampleProjects(),
			Feedback:   sampleFeedback(),
		})
	}
	return employees
}

func bioFor(dept Department) string {
	return fmt.Sprintf("Experienced professional in %s with excellent track record.", dept)
}

// 社員ごとに新しいスライスを返し、呼び出し側での変更が他の社員へ波及しないようにします。
func sampleProjects() []Project {
	return []Project{
		{ID: 1, Name: "Project Alpha", Status: "In Progress", Deadline: "2024-06-15"},
		{ID: 2, Name: "Project Beta", Status: "Completed", Deadline: "2024-05-20"},
	}
}

func sampleFeedback() []Feedback {
	return []Feedback{
		{ID: 1, Reviewer: "John Manager", Comment: "Excellent performance and great team collaboration.", Date: "2024-05-01", Rating: 5},
		{ID: 2, Reviewer: "Sarah Lead", Comment: "Shows initiative and delivers quality work.", Date: "2024-04-15", Rating: 4},
	}
}
