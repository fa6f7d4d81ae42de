package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/directory"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubDirectory struct {
	snap      directory.Snapshot
	reloaded  directory.Snapshot
	loadCalls int
	loadCtx   context.Context
}

func (s *stubDirectory) Snapshot() directory.Snapshot { return s.snap }

func (s *stubDirectory) Load(ctx context.Context) directory.Snapshot {
	s.loadCalls++
	s.loadCtx = ctx
	s.snap = s.reloaded
	return s.snap
}

type stubBookmarks struct {
	ids       map[int]bool
	addErr    error
	removeErr error
}

func newStubBookmarks(ids ...int) *stubBookmarks {
	s := &stubBookmarks{ids: map[int]bool{}}
	for _, id := range ids {
		s.ids[id] = true
	}
	return s
}

func (s *stubBookmarks) Add(_ context.Context, id int) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.ids[id] = true
	return nil
}

func (s *stubBookmarks) Remove(_ context.Context, id int) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.ids, id)
	return nil
}

func (s *stubBookmarks) IsBookmarked(id int) bool { return s.ids[id] }

func (s *stubBookmarks) List() []int {
	out := make([]int, 0, len(s.ids))
	for i := 1; i <= 100; i++ {
		if s.ids[i] {
			out = append(out, i)
		}
	}
	return out
}

func readyDirectory() *stubDirectory {
	employees := employee.Enrich([]employee.RawUser{
		{ID: 1, FirstName: "Emily", LastName: "Johnson", Email: "emily@example.com"},
		{ID: 2, FirstName: "Michael", LastName: "Williams", Email: "michael@example.com"},
		{ID: 3, FirstName: "Sophia", LastName: "Brown", Email: "sophia@example.com"},
	}, constRand(4))
	return &stubDirectory{snap: directory.Snapshot{Status: directory.StatusReady, Employees: employees}}
}

type constRand int

func (r constRand) IntN(n int) int { return int(r) % n }

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	if err != nil {
		t.Fatalf("failed to build struct: %v", err)
	}
	return s
}

func employeeIDs(t *testing.T, s *structpb.Struct) []int {
	t.Helper()
	var ids []int
	for _, v := range s.GetFields()["employees"].GetListValue().GetValues() {
		ids = append(ids, int(v.GetStructValue().GetFields()["id"].GetNumberValue()))
	}
	return ids
}

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok || st.Code() != want {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestDashboardGrpcHandler_ListEmployees_FiltersByDepartment(t *testing.T) {
	t.Parallel()

	h := NewDashboardGrpcHandler(readyDirectory(), newStubBookmarks(2))
	resp, err := h.ListEmployees(context.Background(), mustStruct(t, map[string]any{
		"department": "Marketing",
		"rating":     "All",
	}))
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}

	ids := employeeIDs(t, resp)
	if len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("expected only employee 2, got %v", ids)
	}
	if resp.GetFields()["total"].GetNumberValue() != 3 || resp.GetFields()["visible"].GetNumberValue() != 1 {
		t.Fatalf("unexpected counts: %v", resp.GetFields())
	}
	first := resp.GetFields()["employees"].GetListValue().GetValues()[0].GetStructValue()
	if !first.GetFields()["bookmarked"].GetBoolValue() {
		t.Fatal("expected bookmarked flag for employee 2")
	}
}

func TestDashboardGrpcHandler_ListEmployees_NilRequestMatchesAll(t *testing.T) {
	t.Parallel()

	h := NewDashboardGrpcHandler(readyDirectory(), newStubBookmarks())
	resp, err := h.ListEmployees(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if ids := employeeIDs(t, resp); len(ids) != 3 {
		t.Fatalf("expected all employees, got %v", ids)
	}
}

func TestDashboardGrpcHandler_ListEmployees_InvalidPredicate(t *testing.T) {
	t.Parallel()

	h := NewDashboardGrpcHandler(readyDirectory(), newStubBookmarks())

	for _, req := range []map[string]any{
		{"rating": 7},
		{"rating": 2.5},
		{"rating": "five"},
		{"department": "Legal"},
	} {
		_, err := h.ListEmployees(context.Background(), mustStruct(t, req))
		assertCode(t, err, codes.InvalidArgument)
	}
}

func TestDashboardGrpcHandler_DirectoryStates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		snap directory.Snapshot
		msg  string
	}{
		{name: "idle", snap: directory.Snapshot{Status: directory.StatusIdle}},
		{name: "loading", snap: directory.Snapshot{Status: directory.StatusLoading}},
		{name: "error", snap: directory.Snapshot{Status: directory.StatusError, Err: "Failed to fetch employees"}, msg: "Failed to fetch employees"},
	}

	for _, tc := range cases {
		h := NewDashboardGrpcHandler(&stubDirectory{snap: tc.snap}, newStubBookmarks())
		_, err := h.ListEmployees(context.Background(), nil)
		assertCode(t, err, codes.Unavailable)
		if tc.msg != "" {
			if st, _ := status.FromError(err); st.Message() != tc.msg {
				t.Fatalf("%s: expected message %q, got %q", tc.name, tc.msg, st.Message())
			}
		}
	}
}

func TestDashboardGrpcHandler_GetEmployee(t *testing.T) {
	t.Parallel()

	h := NewDashboardGrpcHandler(readyDirectory(), newStubBookmarks(3))

	resp, err := h.GetEmployee(context.Background(), wrapperspb.Int64(3))
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}
	fields := resp.GetFields()
	if fields["firstName"].GetStringValue() != "Sophia" || fields["department"].GetStringValue() != "Sales" {
		t.Fatalf("unexpected employee: %v", fields)
	}
	if fields["rating"].GetNumberValue() != 5 || !fields["bookmarked"].GetBoolValue() {
		t.Fatalf("unexpected rating/bookmark: %v", fields)
	}
	if n := len(fields["projects"].GetListValue().GetValues()); n != 2 {
		t.Fatalf("expected 2 projects, got %d", n)
	}

	_, err = h.GetEmployee(context.Background(), wrapperspb.Int64(42))
	assertCode(t, err, codes.NotFound)

	_, err = h.GetEmployee(context.Background(), wrapperspb.Int64(0))
	assertCode(t, err, codes.InvalidArgument)
}

func TestDashboardGrpcHandler_Bookmarks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	marks := newStubBookmarks(99)
	h := NewDashboardGrpcHandler(readyDirectory(), marks)

	if _, err := h.AddBookmark(ctx, wrapperspb.Int64(1)); err != nil {
		t.Fatalf("AddBookmark returned error: %v", err)
	}
	got, err := h.IsBookmarked(ctx, wrapperspb.Int64(1))
	if err != nil || !got.GetValue() {
		t.Fatalf("expected employee 1 bookmarked, got %v err=%v", got.GetValue(), err)
	}

	resp, err := h.ListBookmarkedEmployees(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("ListBookmarkedEmployees returned error: %v", err)
	}
	if ids := employeeIDs(t, resp); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("stale bookmark must be ignored, got %v", ids)
	}
	if n := len(resp.GetFields()["bookmark_ids"].GetListValue().GetValues()); n != 2 {
		t.Fatalf("expected raw bookmark ids to include stale id, got %d", n)
	}

	if _, err := h.RemoveBookmark(ctx, wrapperspb.Int64(1)); err != nil {
		t.Fatalf("RemoveBookmark returned error: %v", err)
	}
	got, _ = h.IsBookmarked(ctx, wrapperspb.Int64(1))
	if got.GetValue() {
		t.Fatal("expected employee 1 to be removed")
	}
}

func TestDashboardGrpcHandler_BookmarkErrors(t *testing.T) {
	t.Parallel()

	marks := newStubBookmarks()
	marks.addErr = errors.Join(bookmark.ErrPersist, errors.New("disk full"))
	h := NewDashboardGrpcHandler(readyDirectory(), marks)

	_, err := h.AddBookmark(context.Background(), wrapperspb.Int64(1))
	assertCode(t, err, codes.Internal)

	_, err = h.AddBookmark(context.Background(), nil)
	assertCode(t, err, codes.InvalidArgument)
}

func TestDashboardGrpcHandler_GetAnalytics(t *testing.T) {
	t.Parallel()

	h := NewDashboardGrpcHandler(readyDirectory(), newStubBookmarks(1, 2))
	resp, err := h.GetAnalytics(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetAnalytics returned error: %v", err)
	}

	totals := resp.GetFields()["totals"].GetStructValue().GetFields()
	if totals["employeeCount"].GetNumberValue() != 3 || totals["bookmarkCount"].GetNumberValue() != 2 {
		t.Fatalf("unexpected totals: %v", totals)
	}
	if totals["highPerformerCount"].GetNumberValue() != 3 {
		t.Fatalf("expected all employees rated 5 to be high performers, got %v", totals["highPerformerCount"])
	}
	if n := len(resp.GetFields()["ratingHistogram"].GetListValue().GetValues()); n != 5 {
		t.Fatalf("expected 5 histogram buckets, got %d", n)
	}
}

func TestDashboardGrpcHandler_GetAnalytics_NoData(t *testing.T) {
	t.Parallel()

	dir := &stubDirectory{snap: directory.Snapshot{Status: directory.StatusReady}}
	h := NewDashboardGrpcHandler(dir, newStubBookmarks())

	_, err := h.GetAnalytics(context.Background(), &emptypb.Empty{})
	assertCode(t, err, codes.FailedPrecondition)
}

func TestDashboardGrpcHandler_ReloadEmployees(t *testing.T) {
	t.Parallel()

	dir := &stubDirectory{
		snap:     directory.Snapshot{Status: directory.StatusError, Err: "boom"},
		reloaded: readyDirectory().snap,
	}
	h := NewDashboardGrpcHandler(dir, newStubBookmarks())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := h.ReloadEmployees(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("ReloadEmployees returned error: %v", err)
	}
	if dir.loadCalls != 1 {
		t.Fatalf("expected one load, got %d", dir.loadCalls)
	}
	if dir.loadCtx.Err() != nil {
		t.Fatal("reload must not inherit caller cancellation")
	}
	fields := resp.GetFields()
	if fields["status"].GetStringValue() != "ready" || fields["employee_count"].GetNumberValue() != 3 {
		t.Fatalf("unexpected status: %v", fields)
	}
}

func TestDashboardGrpcHandler_GetDirectoryStatus(t *testing.T) {
	t.Parallel()

	dir := &stubDirectory{snap: directory.Snapshot{Status: directory.StatusError, Err: "Failed to fetch employees"}}
	h := NewDashboardGrpcHandler(dir, newStubBookmarks())

	resp, err := h.GetDirectoryStatus(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetDirectoryStatus returned error: %v", err)
	}
	if resp.GetFields()["status"].GetStringValue() != "error" || resp.GetFields()["error"].GetStringValue() != "Failed to fetch employees" {
		t.Fatalf("unexpected status: %v", resp.GetFields())
	}
}
