package main

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"po-go/internal/organize"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderPlan shows a dry run as one row per planned move.
func renderPlan(plan *organize.Plan) string {
	rows := make([][]string, 0, len(plan.Moves))
	for _, mv := range plan.Moves {
		rows = append(rows, []string{
			filepath.Base(mv.Entry.Path.String()),
			mv.Entry.CreatedAt.Format("2006-01-02"),
			filepath.Dir(mv.Destination),
		})
	}
	return renderTable(
		[]string{"File", "Created", "Destination"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	)
}

// renderSummary aggregates a report into per-directory counts.
func renderSummary(report *organize.Report) string {
	type counts struct {
		succeeded int
		failed    int
	}
	byDir := make(map[string]*counts)
	for _, res := range report.Results {
		dir := filepath.Dir(res.Move.Destination)
		c, ok := byDir[dir]
		if !ok {
			c = &counts{}
			byDir[dir] = c
		}
		if res.Outcome == organize.OutcomeFailed {
			c.failed++
		} else {
			c.succeeded++
		}
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	rows := make([][]string, 0, len(dirs))
	for _, dir := range dirs {
		c := byDir[dir]
		rows = append(rows, []string{dir, strconv.Itoa(c.succeeded), strconv.Itoa(c.failed)})
	}
	return renderTable(
		[]string{"Directory", "Organized", "Failed"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}

// renderTable renders a rounded table when stdout is a terminal and falls
// back to plain tab-separated lines otherwise (pipes, redirects).
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	if !stdoutIsTerminal() {
		var b strings.Builder
		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteString("\n")
		}
		return strings.TrimSuffix(b.String(), "\n")
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
