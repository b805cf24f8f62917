package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/arcana"
	md "github.com/nao1215/markdown"
)

// ListMarkdown renders readings to a markdown document, one section per
// reading, in the given order.
func ListMarkdown(entries []arcana.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	for _, entry := range entries {
		doc.H2(fmt.Sprintf("[%s] %s", entry.Date, spreadLabel(entry.Spread)))
		doc.PlainText(entry.Question)

		table := md.TableSet{
			Header: []string{"Cards", "Notes"},
			Rows: [][]string{
				{joinCards(entry.Cards), entry.Notes},
			},
		}
		doc.Table(table)
	}

	return doc.String()
}
