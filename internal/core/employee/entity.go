package employee

// Department は社員の所属部署を表します。
type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentHR          Department = "HR"
	DepartmentDesign      Department = "Design"
	DepartmentFinance     Department = "Finance"

	// DepartmentAll はフィルタで「全部署」を意味する番兵値です。
	DepartmentAll Department = "All"
)

// Departments は取得順に割り当てる部署の固定リストです。順序を変更すると割り当て結果が変わります。
var Departments = []Department{
	DepartmentEngineering,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentDesign,
	DepartmentFinance,
}

const (
	MinRating = 1
	MaxRating = 5

	// HighPerformerRating 以上の評価を持つ社員をハイパフォーマーとして扱います。
	HighPerformerRating = 4
)

// Address は上流から取得した住所をそのまま保持します。
type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// RawUser は people-data source が返す未加工のユーザーレコードです。
type RawUser struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Age       int     `json:"age"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
	Image     string  `json:"image"`
}

// Project は社員が担当するプロジェクトのサンプルデータです。
type Project struct {
	ID       int
	Name     string
	Status   string
	Deadline string
}

// Feedback は社員へのレビューコメントのサンプルデータです。
type Feedback struct {
	ID       int
	Reviewer string
	Comment  string
	Date     string
	Rating   int
}

// Employee は表示用に加工済みの社員エンティティです。セッション中は生成後に変更されません。
type Employee struct {
	ID         int
	FirstName  string
	LastName   string
	Email      string
	Age        int
	Phone      string
	Address    Address
	Image      string
	Department Department
	Rating     int
	Bio        string
	Projects   []Project
	Feedback   []Feedback
}

// FullName は表示用の氏名を返します。
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsHighPerformer は評価が HighPerformerRating 以上かどうかを返します。
func (e Employee) IsHighPerformer() bool {
	return e.Rating >= HighPerformerRating
}

// IsValidDepartment は d が固定部署リストに含まれるかを返します。番兵値 All は含みません。
func IsValidDepartment(d Department) bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}
