package estimate

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlTableToPipeRows converts the first HTML table in fragment into
// markdown pipe rows (header, separator, data) so the regular row
// extraction can run on it. Colspans are exploded into repeated cells to
// keep column positions stable. Returns "" when nothing parses, which
// the caller treats like an absent table.
func htmlTableToPipeRows(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	rows := doc.Find("table").First().Find("tr")
	if rows.Length() == 0 {
		return ""
	}

	var b strings.Builder
	cols := 0
	rows.Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			colspan, _ := strconv.Atoi(cell.AttrOr("colspan", "1"))
			if colspan < 1 {
				colspan = 1
			}
			text := cleanCellText(cell.Text())
			for c := 0; c < colspan; c++ {
				cells = append(cells, text)
			}
		})
		if len(cells) == 0 {
			return
		}

		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if i == 0 {
			cols = len(cells)
			b.WriteString("|" + strings.Repeat(" :--- |", cols) + "\n")
		}
	})

	return b.String()
}

// cleanCellText collapses the whitespace runs goquery leaves behind and
// strips pipe characters that would corrupt the row format.
func cleanCellText(text string) string {
	text = strings.ReplaceAll(text, "|", "/")
	return strings.Join(strings.Fields(text), " ")
}
