package output

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sdevries/fileshelf/pkg/classify"
	"github.com/sdevries/fileshelf/pkg/models"
)

// RenderCategoryTable renders the category table as a bordered text
// table, one row per category in declared order.
func RenderCategoryTable(categories []classify.Category) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Extensions"})

	for _, category := range categories {
		tw.AppendRow(table.Row{category.Label, strings.Join(category.Extensions, ", ")})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: 72},
	})

	return tw.Render()
}

// RenderCountsTable renders the per-category move counts of a
// finished run.
func RenderCountsTable(counts []models.CategoryCount) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Files"})

	total := 0
	for _, cc := range counts {
		tw.AppendRow(table.Row{cc.Category, strconv.Itoa(cc.Count)})
		total += cc.Count
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(total)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
