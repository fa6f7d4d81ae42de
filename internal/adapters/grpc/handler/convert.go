package handler

import (
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/analytics"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/directory"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
)

func toEmployeeMap(e employee.Employee, bookmarked bool) map[string]any {
	projects := make([]any, 0, len(e.Projects))
	for _, p := range e.Projects {
		projects = append(projects, map[string]any{
			"id":       p.ID,
			"name":     p.Name,
			"status":   p.Status,
			"deadline": p.Deadline,
		})
	}

	feedback := make([]any, 0, len(e.Feedback))
	for _, f := range e.Feedback {
		feedback = append(feedback, map[string]any{
			"id":       f.ID,
			"reviewer": f.Reviewer,
			"comment":  f.Comment,
			"date":     f.Date,
			"rating":   f.Rating,
		})
	}

	return map[string]any{
		"id":        e.ID,
		"firstName": e.FirstName,
		"lastName":  e.LastName,
		"email":     e.Email,
		"age":       e.Age,
		"phone":     e.Phone,
		"address": map[string]any{
			"address": e.Address.Address,
			"city":    e.Address.City,
			"state":   e.Address.State,
		},
		"image":      e.Image,
		"department": string(e.Department),
		"rating":     e.Rating,
		"bio":        e.Bio,
		"projects":   projects,
		"feedback":   feedback,
		"bookmarked": bookmarked,
	}
}

func toAnalyticsMap(s *analytics.Snapshot) map[string]any {
	departments := make([]any, 0, len(s.PerDepartment))
	for _, d := range s.PerDepartment {
		departments = append(departments, map[string]any{
			"department":      string(d.Department),
			"employeeCount":   d.EmployeeCount,
			"averageRating":   d.AverageRating,
			"bookmarkedCount": d.BookmarkedCount,
		})
	}

	histogram := make([]any, 0, len(s.RatingHistogram))
	for _, b := range s.RatingHistogram {
		histogram = append(histogram, map[string]any{
			"rating": b.Rating,
			"label":  b.Label,
			"count":  b.Count,
		})
	}

	trend := make([]any, 0, len(s.BookmarkTrend))
	for _, p := range s.BookmarkTrend {
		trend = append(trend, map[string]any{
			"label": p.Label,
			"count": p.Count,
		})
	}

	return map[string]any{
		"perDepartment":   departments,
		"ratingHistogram": histogram,
		"totals": map[string]any{
			"employeeCount":      s.Totals.EmployeeCount,
			"averageRating":      s.Totals.AverageRating,
			"bookmarkCount":      s.Totals.BookmarkCount,
			"highPerformerCount": s.Totals.HighPerformerCount,
		},
		"bookmarkTrend": trend,
	}
}

func toStatusMap(snap directory.Snapshot) map[string]any {
	m := map[string]any{
		"status":         string(snap.Status),
		"error":          snap.Err,
		"employee_count": len(snap.Employees),
	}
	if !snap.LoadedAt.IsZero() {
		m["loaded_at"] = snap.LoadedAt.Format(time.RFC3339)
	}
	return m
}
