package render

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/net/html"
)

// ContainerID is the id of the element the chart is drawn into.
const ContainerID = "main"

const stylesheet = `
body { font-family: sans-serif; margin: 2rem; }
#main { position: relative; max-width: 960px; margin: 0 auto; text-align: center; }
#title { margin-bottom: 0.5rem; }
#description { margin: 0.25rem 0 0; font-weight: normal; }
#tooltip {
  position: absolute;
  pointer-events: none;
  white-space: pre-line;
  text-align: left;
  padding: 0.4rem 0.6rem;
  font-size: 0.8rem;
  background: rgba(20, 20, 20, 0.85);
  color: #fff;
  border-radius: 4px;
  transition: opacity 0.1s;
}
rect.cell:hover { stroke: #000; stroke-width: 1; }
`

// NewDocument builds an empty HTML page and returns it together with its
// chart container (div#main).
func NewDocument(rc Context) (doc, container *html.Node) {
	doc = &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := appendEl(doc, "html", "lang", "en")
	head := appendEl(root, "head")
	appendEl(head, "meta", "charset", "utf-8")
	appendEl(head, "meta", "name", "generated", "content", rc.GeneratedAt.UTC().Format(time.RFC3339))
	if rc.RunID != "" {
		appendEl(head, "meta", "name", "run-id", "content", rc.RunID)
	}
	appendText(appendEl(head, "title"), "Monthly Global Land-Surface Temperature")
	appendText(appendEl(head, "style"), stylesheet)

	body := appendEl(root, "body")
	container = appendEl(body, "div", "id", ContainerID)
	return doc, container
}

// WriteDocument serializes doc as HTML.
func WriteDocument(w io.Writer, doc *html.Node) error {
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
