package result

import (
	"fmt"
	"strings"

	"github.com/bnema/employee-pairs-cli/internal/application"
	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const NoOverlapMessage = "No overlapping work periods found."

type RenderOptions struct {
	ShowBreakdown bool
	ShowSummary   bool
}

// Render formats the longest-pair report.
func Render(report application.Report, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderReport(report, opts, s)
	})
}

// RenderRanking formats ranked pairs as a table.
func RenderRanking(pairs []domain.ResultPair) (string, error) {
	return run(func(s styles) string {
		return renderRanking(pairs, s)
	})
}

// Sentence is the one-line answer for a pair.
func Sentence(pair domain.ResultPair) string {
	return fmt.Sprintf("Employees %d and %d worked together for %d %s.",
		pair.Employee1ID, pair.Employee2ID, pair.TotalDaysWorkedTogether, pluralDays(pair.TotalDaysWorkedTogether))
}

func renderReport(report application.Report, opts RenderOptions, s styles) string {
	lines := make([]string, 0, 4)
	if opts.ShowSummary {
		lines = append(lines, s.header.Render(fmt.Sprintf("records: %d  projects: %d  pairs: %d", report.Records, report.Projects, report.Pairs)))
	}

	if !report.Found() {
		lines = append(lines, s.empty.Render(NoOverlapMessage))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.answer.Render(Sentence(*report.Longest)))

	if opts.ShowBreakdown && len(report.Breakdown) > 0 {
		lines = append(lines, s.section.Render(renderBreakdown(report.Breakdown, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBreakdown(overlaps []domain.ProjectOverlap, s styles) string {
	width := len("Project")
	for _, overlap := range overlaps {
		width = max(width, len(fmt.Sprint(overlap.ProjectID)))
	}

	rows := []string{s.column.Render(fmt.Sprintf("%-*s  %s", width, "Project", "Days"))}
	for _, overlap := range overlaps {
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.detail.Render(fmt.Sprintf("%-*d  ", width, overlap.ProjectID)),
			s.days.Render(fmt.Sprintf("%d", overlap.Days)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderRanking(pairs []domain.ResultPair, s styles) string {
	lines := []string{
		s.title.Render("Employee pairs"),
		s.header.Render(fmt.Sprintf("pairs: %d", len(pairs))),
	}

	if len(pairs) == 0 {
		lines = append(lines, s.empty.Render(NoOverlapMessage))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	headers := []string{"#", "Employee 1", "Employee 2", "Days"}
	table := make([][]string, 0, len(pairs))
	for i, pair := range pairs {
		table = append(table, []string{
			fmt.Sprint(i + 1),
			fmt.Sprint(pair.Employee1ID),
			fmt.Sprint(pair.Employee2ID),
			fmt.Sprint(pair.TotalDaysWorkedTogether),
		})
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range table {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	rows := []string{s.column.Render(formatRow(headers, widths))}
	for _, row := range table {
		rows = append(rows, s.detail.Render(formatRow(row, widths)))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
