package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/arcana"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a reading history summary to a markdown document.
func SummaryMarkdown(s *arcana.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Reading Summary")
	doc.PlainText(fmt.Sprintf("Total readings: %d", s.Total))
	if !s.First.IsZero() {
		doc.PlainText(fmt.Sprintf("From %s to %s", s.First, s.Last))
	}

	if len(s.TopCards) > 0 {
		doc.H2("Most frequent cards")

		rows := make([][]string, 0, len(s.TopCards))
		for _, cc := range s.TopCards {
			rows = append(rows, []string{cc.Card, strconv.Itoa(cc.Count)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Card", "Count"},
			Rows:   rows,
		})
	}

	return doc.String()
}
