package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<header>
<p class="stats">{{.Entries}} resources in {{.Categories}} categories</p>
</header>
<main>
{{.Body}}
</main>
</body>
</html>
`))

type pageData struct {
	Title      string
	Entries    int
	Categories int
	Body       template.HTML
}

// Page renders a complete HTML page for the reading list.
func Page(doc *domain.Document, source []byte) ([]byte, error) {
	body, err := HTML(source)
	if err != nil {
		return nil, err
	}

	title := doc.Title
	if title == "" {
		title = "Reading list"
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Title:      title,
		Entries:    len(doc.Entries()),
		Categories: len(doc.Categories),
		// goldmark escapes raw HTML unless WithUnsafe is set
		Body: template.HTML(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	return buf.Bytes(), nil
}
