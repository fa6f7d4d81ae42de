package employee

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// RatingAll はフィルタで「全評価」を意味する番兵値です。
const RatingAll = 0

// Predicate は一覧の検索・絞り込み条件です。
type Predicate struct {
	SearchTerm string
	Department Department `validate:"omitempty,oneof=All Engineering Marketing Sales HR Design Finance"`
	Rating     int        `validate:"gte=0,lte=5"`
}

// MatchAll は全件に一致する条件です。
var MatchAll = Predicate{Department: DepartmentAll, Rating: RatingAll}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func predicateValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate は条件が取り得る値の範囲内かを検証します。
func (p Predicate) Validate() error {
	if err := predicateValidator().Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPredicate, err)
	}
	return nil
}

func (p Predicate) anyDepartment() bool {
	return p.Department == "" || p.Department == DepartmentAll
}

// Matches は社員が条件をすべて満たすかを返します。
func (p Predicate) Matches(e Employee) bool {
	if !p.anyDepartment() && e.Department != p.Department {
		return false
	}
	if p.Rating != RatingAll && e.Rating != p.Rating {
		return false
	}
	if p.SearchTerm == "" {
		return true
	}

	term := strings.ToLower(p.SearchTerm)
	for _, field := range []string{e.FirstName, e.LastName, e.Email, string(e.Department)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Filter は条件に一致する社員を元の順序のまま返します。
func Filter(employees []Employee, p Predicate) []Employee {
	result := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if p.Matches(e) {
			result = append(result, e)
		}
	}
	return result
}

// FindByID は id に一致する社員を返します。
func FindByID(employees []Employee, id int) (Employee, bool) {
	for _, e := range employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// Bookmarked はブックマーク済みの社員を一覧の順序で返します。一覧に存在しない id は無視されます。
func Bookmarked(employees []Employee, ids []int) []Employee {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	result := make([]Employee, 0, len(ids))
	for _, e := range employees {
		if _, ok := set[e.ID]; ok {
			result = append(result, e)
		}
	}
	return result
}
