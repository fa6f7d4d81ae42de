package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	dashboardv1 "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/api/dashboard/v1"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/analytics"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/directory"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var errDirectoryNotReady = errors.New("directory: employees are not available")

// EmployeeDirectory は社員一覧の読み取りと再取得を提供します。
type EmployeeDirectory interface {
	Snapshot() directory.Snapshot
	Load(ctx context.Context) directory.Snapshot
}

// BookmarkStore はブックマーク集合の読み書きを提供します。
type BookmarkStore interface {
	Add(ctx context.Context, id int) error
	Remove(ctx context.Context, id int) error
	IsBookmarked(id int) bool
	List() []int
}

// DashboardGrpcHandler は DashboardService の gRPC 実装です。
type DashboardGrpcHandler struct {
	directory EmployeeDirectory
	bookmarks BookmarkStore
	dashboardv1.UnimplementedDashboardServiceServer
}

// NewDashboardGrpcHandler は DashboardGrpcHandler を生成します。
func NewDashboardGrpcHandler(dir EmployeeDirectory, bookmarks BookmarkStore) *DashboardGrpcHandler {
	return &DashboardGrpcHandler{directory: dir, bookmarks: bookmarks}
}

// ListEmployees は検索条件に一致する社員を返します。
func (h *DashboardGrpcHandler) ListEmployees(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	predicate, err := parsePredicate(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	employees, err := h.readyEmployees()
	if err != nil {
		return nil, err
	}

	visible := employee.Filter(employees, predicate)
	return newStruct(map[string]any{
		"employees": employeeList(visible, h.bookmarks.List()),
		"total":     len(employees),
		"visible":   len(visible),
	})
}

// GetEmployee は社員の詳細を返します。
func (h *DashboardGrpcHandler) GetEmployee(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id, err := parseID(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	employees, err := h.readyEmployees()
	if err != nil {
		return nil, err
	}

	found, ok := employee.FindByID(employees, id)
	if !ok {
		return nil, toStatusError(fmt.Errorf("id %d: %w", id, employee.ErrEmployeeNotFound))
	}

	return newStruct(toEmployeeMap(found, h.bookmarks.IsBookmarked(found.ID)))
}

// ListBookmarkedEmployees はブックマーク済みの社員を返します。
func (h *DashboardGrpcHandler) ListBookmarkedEmployees(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	ids := h.bookmarks.List()

	employees, err := h.readyEmployees()
	if err != nil {
		return nil, err
	}

	bookmarkIDs := make([]any, 0, len(ids))
	for _, id := range ids {
		bookmarkIDs = append(bookmarkIDs, id)
	}

	return newStruct(map[string]any{
		"employees":    employeeList(employee.Bookmarked(employees, ids), ids),
		"bookmark_ids": bookmarkIDs,
	})
}

// AddBookmark は社員をブックマークします。
func (h *DashboardGrpcHandler) AddBookmark(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	id, err := parseID(req)
	if err != nil {
		return nil, toStatusError(err)
	}
	if err := h.bookmarks.Add(ctx, id); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// RemoveBookmark はブックマークを解除します。
func (h *DashboardGrpcHandler) RemoveBookmark(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	id, err := parseID(req)
	if err != nil {
		return nil, toStatusError(err)
	}
	if err := h.bookmarks.Remove(ctx, id); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// IsBookmarked は社員がブックマーク済みかを返します。
func (h *DashboardGrpcHandler) IsBookmarked(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	id, err := parseID(req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return wrapperspb.Bool(h.bookmarks.IsBookmarked(id)), nil
}

// GetAnalytics は現在の社員一覧とブックマーク集合の集計を返します。
func (h *DashboardGrpcHandler) GetAnalytics(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	ids := h.bookmarks.List()

	employees, err := h.readyEmployees()
	if err != nil {
		return nil, err
	}

	snapshot, err := analytics.Aggregate(employees, ids)
	if err != nil {
		return nil, toStatusError(err)
	}
	return newStruct(toAnalyticsMap(snapshot))
}

// GetDirectoryStatus は社員一覧の取得状態を返します。
func (h *DashboardGrpcHandler) GetDirectoryStatus(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return newStruct(toStatusMap(h.directory.Snapshot()))
}

// ReloadEmployees は社員一覧を再取得します。呼び出し元の切断で取得が中断されないよう、キャンセルは伝播しません。
func (h *DashboardGrpcHandler) ReloadEmployees(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	snap := h.directory.Load(context.WithoutCancel(ctx))
	return newStruct(toStatusMap(snap))
}

func (h *DashboardGrpcHandler) readyEmployees() ([]employee.Employee, error) {
	snap := h.directory.Snapshot()
	switch snap.Status {
	case directory.StatusReady:
		return snap.Employees, nil
	case directory.StatusError:
		return nil, status.Error(codes.Unavailable, snap.Err)
	case directory.StatusLoading:
		return nil, toStatusError(fmt.Errorf("%w: loading", errDirectoryNotReady))
	default:
		return nil, toStatusError(fmt.Errorf("%w: not loaded", errDirectoryNotReady))
	}
}

// employeeList は同一時点のブックマーク集合 ids と突き合わせて一覧を組み立てます。
func employeeList(employees []employee.Employee, ids []int) []any {
	bookmarked := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		bookmarked[id] = struct{}{}
	}

	list := make([]any, 0, len(employees))
	for _, e := range employees {
		_, ok := bookmarked[e.ID]
		list = append(list, toEmployeeMap(e, ok))
	}
	return list
}

func parseID(req *wrapperspb.Int64Value) (int, error) {
	if req == nil || req.GetValue() <= 0 || req.GetValue() > math.MaxInt32 {
		return 0, employee.ErrInvalidID
	}
	return int(req.GetValue()), nil
}

func parsePredicate(req *structpb.Struct) (employee.Predicate, error) {
	p := employee.MatchAll
	if req == nil {
		return p, nil
	}
	fields := req.GetFields()

	if v, ok := fields["search"]; ok {
		p.SearchTerm = v.GetStringValue()
	}

	if v, ok := fields["department"]; ok {
		if dept := strings.TrimSpace(v.GetStringValue()); dept != "" {
			p.Department = employee.Department(dept)
		}
	}

	if v, ok := fields["rating"]; ok {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_NumberValue:
			n := kind.NumberValue
			if n != math.Trunc(n) {
				return p, fmt.Errorf("%w: rating must be an integer", employee.ErrInvalidPredicate)
			}
			p.Rating = int(n)
		case *structpb.Value_StringValue:
			if !strings.EqualFold(kind.StringValue, string(employee.DepartmentAll)) && kind.StringValue != "" {
				return p, fmt.Errorf("%w: rating must be 1-5 or All", employee.ErrInvalidPredicate)
			}
		case *structpb.Value_NullValue:
		default:
			return p, fmt.Errorf("%w: rating must be a number", employee.ErrInvalidPredicate)
		}
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return s, nil
}
