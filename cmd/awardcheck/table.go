package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okian/awards/internal/domain/types"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1)
)

// table renders rows as padded columns separated by bars.
type table struct {
	headers []string
	rows    [][]string
	// styleFor picks a style for a body cell; nil means cellStyle.
	styleFor func(row, col int) lipgloss.Style
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	// Width includes padding.
	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	var sb strings.Builder
	sep := mutedStyle.Render("|")
	for i, h := range t.headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.headers)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for r, row := range t.rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			style := cellStyle
			if t.styleFor != nil {
				style = t.styleFor(r, i)
			}
			sb.WriteString(style.Width(widths[i]).Render(cell))
			if i < len(widths)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

const eligibleCol = 7

func renderEvaluation(ev types.Evaluation) string {
	var sb strings.Builder
	split := "combined"
	if ev.GradeSplit {
		split = "by grade"
	}
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", ev.Program, split)))
	sb.WriteString(fmt.Sprintf("  attending %d  eligible %d  sort %s\n\n", ev.Attending, ev.Eligible, ev.Sort))

	if len(ev.Results) == 0 {
		sb.WriteString(mutedStyle.Render("no teams"))
		sb.WriteString("\n")
		return sb.String()
	}

	t := &table{headers: []string{"Team", "Grade", "Qualifying", "Skills", "Prog-only", "Programming", "Driver", "Eligible", "Missing"}}
	for _, r := range ev.Results {
		verdict := "no"
		if r.Eligible {
			verdict = "yes"
		}
		t.add(
			r.Team.Number,
			r.Team.Grade,
			formatRank(r.Qualifying),
			formatRank(r.Skills),
			formatOptionalRank(r.ProgrammingOnly),
			formatScore(r.Programming),
			formatScore(r.Driver),
			verdict,
			strings.Join(r.Failed, ", "),
		)
	}
	t.styleFor = func(row, col int) lipgloss.Style {
		if col != eligibleCol {
			return cellStyle
		}
		if ev.Results[row].Eligible {
			return passStyle
		}
		return failStyle
	}
	sb.WriteString(t.render())

	if len(ev.Pools) > 0 {
		sb.WriteString("\n")
		p := &table{headers: []string{"Criterion", "Pool", "Size", "Cutoff", "Ranked"}}
		for _, pool := range ev.Pools {
			p.add(pool.Criterion, pool.Pool, strconv.Itoa(pool.Size), strconv.Itoa(pool.Cutoff), strconv.FormatBool(pool.Ranked))
		}
		sb.WriteString(p.render())
	}
	return sb.String()
}

func renderPrograms(progs []types.ProgramEntry) string {
	t := &table{headers: []string{"Program", "Name", "Threshold", "Requires", "Grades", "Rounding"}}
	for _, p := range progs {
		var req []string
		if p.RequiresProgrammingScore {
			req = append(req, "programming")
		}
		if p.RequiresDriverScore {
			req = append(req, "driver")
		}
		if p.RequiresProgrammingOnlyRank {
			req = append(req, fmt.Sprintf("prog-only top %s", formatPercent(p.ProgrammingOnlyThreshold)))
		}
		t.add(p.ID, p.Name, formatPercent(p.Threshold), strings.Join(req, ", "), strings.Join(p.GradePartitions, ", "), p.Rounding)
	}
	return t.render()
}

func formatRank(r types.RankEntry) string {
	if r.Rank < 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", r.Rank, r.Cutoff)
}

func formatOptionalRank(r *types.RankEntry) string {
	if r == nil {
		return ""
	}
	return formatRank(*r)
}

func formatScore(s types.ScoreEntry) string {
	return strconv.Itoa(s.Score)
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', -1, 64) + "%"
}
