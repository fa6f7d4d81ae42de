package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, output string) (*printer, error) {
	switch strings.ToLower(output) {
	case "", outputTable:
		return &printer{w: w}, nil
	case outputJSON:
		return &printer{w: w, json: true}, nil
	default:
		return nil, fmt.Errorf("unsupported output %q (table|json)", output)
	}
}

func (p *printer) raw(s *structpb.Struct) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(b))
	return err
}

func (p *printer) message(msg string) error {
	if p.json {
		s, err := structpb.NewStruct(map[string]any{"message": msg})
		if err != nil {
			return err
		}
		return p.raw(s)
	}
	_, err := fmt.Fprintln(p.w, msg)
	return err
}

func (p *printer) employees(resp *structpb.Struct) error {
	if p.json {
		return p.raw(resp)
	}

	t := newTable("", "ID", "NAME", "EMAIL", "DEPARTMENT", "RATING", "BOOKMARKED")
	for _, v := range resp.GetFields()["employees"].GetListValue().GetValues() {
		e := v.GetStructValue().GetFields()
		t.addRow(
			number(e["id"]),
			e["firstName"].GetStringValue()+" "+e["lastName"].GetStringValue(),
			e["email"].GetStringValue(),
			e["department"].GetStringValue(),
			stars(int(e["rating"].GetNumberValue())),
			yesNo(e["bookmarked"].GetBoolValue()),
		)
	}
	if len(t.rows) == 0 {
		_, err := fmt.Fprintln(p.w, mutedStyle.Render("No employees found."))
		return err
	}

	out := t.render()
	if total, ok := resp.GetFields()["total"]; ok {
		out += mutedStyle.Render(fmt.Sprintf("%s of %s employees", number(resp.GetFields()["visible"]), number(total))) + "\n"
	}
	_, err := fmt.Fprint(p.w, out)
	return err
}

func (p *printer) employee(resp *structpb.Struct) error {
	if p.json {
		return p.raw(resp)
	}

	e := resp.GetFields()
	addr := e["address"].GetStructValue().GetFields()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(e["firstName"].GetStringValue()+" "+e["lastName"].GetStringValue()) + "\n")
	fmt.Fprintf(&sb, "Email:      %s\n", e["email"].GetStringValue())
	fmt.Fprintf(&sb, "Phone:      %s\n", e["phone"].GetStringValue())
	fmt.Fprintf(&sb, "Age:        %s\n", number(e["age"]))
	fmt.Fprintf(&sb, "Address:    %s, %s, %s\n", addr["address"].GetStringValue(), addr["city"].GetStringValue(), addr["state"].GetStringValue())
	fmt.Fprintf(&sb, "Department: %s\n", e["department"].GetStringValue())
	fmt.Fprintf(&sb, "Rating:     %s\n", stars(int(e["rating"].GetNumberValue())))
	fmt.Fprintf(&sb, "Bookmarked: %s\n", yesNo(e["bookmarked"].GetBoolValue()))
	fmt.Fprintf(&sb, "Bio:        %s\n\n", e["bio"].GetStringValue())

	projects := newTable("Projects", "ID", "NAME", "STATUS", "DEADLINE")
	for _, v := range e["projects"].GetListValue().GetValues() {
		f := v.GetStructValue().GetFields()
		projects.addRow(number(f["id"]), f["name"].GetStringValue(), f["status"].GetStringValue(), f["deadline"].GetStringValue())
	}
	sb.WriteString(projects.render())

	feedback := newTable("Feedback", "REVIEWER", "DATE", "RATING", "COMMENT")
	for _, v := range e["feedback"].GetListValue().GetValues() {
		f := v.GetStructValue().GetFields()
		feedback.addRow(f["reviewer"].GetStringValue(), f["date"].GetStringValue(), stars(int(f["rating"].GetNumberValue())), f["comment"].GetStringValue())
	}
	sb.WriteString(feedback.render())

	_, err := fmt.Fprint(p.w, sb.String())
	return err
}

func (p *printer) analytics(resp *structpb.Struct) error {
	if p.json {
		return p.raw(resp)
	}

	fields := resp.GetFields()
	totals := fields["totals"].GetStructValue().GetFields()

	summary := newTable("Totals", "EMPLOYEES", "AVG RATING", "BOOKMARKED", "HIGH PERFORMERS")
	summary.addRow(number(totals["employeeCount"]), decimal(totals["averageRating"]), number(totals["bookmarkCount"]), number(totals["highPerformerCount"]))

	departments := newTable("Departments", "DEPARTMENT", "EMPLOYEES", "AVG RATING", "BOOKMARKED")
	for _, v := range fields["perDepartment"].GetListValue().GetValues() {
		d := v.GetStructValue().GetFields()
		departments.addRow(d["department"].GetStringValue(), number(d["employeeCount"]), decimal(d["averageRating"]), number(d["bookmarkedCount"]))
	}

	histogram := newTable("Rating distribution", "RATING", "COUNT")
	for _, v := range fields["ratingHistogram"].GetListValue().GetValues() {
		b := v.GetStructValue().GetFields()
		histogram.addRow(b["label"].GetStringValue(), number(b["count"]))
	}

	trend := newTable("Bookmark trend", "MONTH", "BOOKMARKS")
	for _, v := range fields["bookmarkTrend"].GetListValue().GetValues() {
		b := v.GetStructValue().GetFields()
		trend.addRow(b["label"].GetStringValue(), number(b["count"]))
	}

	_, err := fmt.Fprint(p.w, summary.render()+departments.render()+histogram.render()+trend.render())
	return err
}

func (p *printer) status(resp *structpb.Struct) error {
	if p.json {
		return p.raw(resp)
	}

	f := resp.GetFields()
	t := newTable("", "STATUS", "EMPLOYEES", "LOADED AT", "ERROR")
	t.addRow(f["status"].GetStringValue(), number(f["employee_count"]), f["loaded_at"].GetStringValue(), f["error"].GetStringValue())
	_, err := fmt.Fprint(p.w, t.render())
	return err
}

func number(v *structpb.Value) string {
	return strconv.FormatInt(int64(v.GetNumberValue()), 10)
}

func decimal(v *structpb.Value) string {
	return strconv.FormatFloat(v.GetNumberValue(), 'f', 1, 64)
}

func stars(n int) string {
	if n <= 0 {
		return "-"
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", max(0, 5-n))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// table は lipgloss で幅を揃えた静的な表です。
type table struct {
	title   string
	headers []string
	rows    [][]string
}

func newTable(title string, headers ...string) *table {
	return &table{title: title, headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// Padding(0, 1) の左右 1 桁ずつ
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	if t.title != "" {
		sb.WriteString(titleStyle.Render(t.title) + "\n")
	}

	line := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(widths))
		for i := range widths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = style.Width(widths[i]).Render(cell)
		}
		sb.WriteString(strings.Join(parts, mutedStyle.Render("|")) + "\n")
	}

	line(t.headers, headerStyle)
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", total)) + "\n")
	for _, row := range t.rows {
		line(row, cellStyle)
	}
	sb.WriteString("\n")
	return sb.String()
}
