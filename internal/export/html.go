package export

import (
	"html/template"
	"io"
)

var printTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 1.5rem; }
p { margin: 0.2rem 0; }
@media print { button { display: none; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Sections}}<section>
<h2>{{.Heading}}</h2>
{{range .Lines}}<p>{{.}}</p>
{{end}}</section>
{{end}}<button onclick="window.print()">Print</button>
</body>
</html>
`))

// WriteHTML renders a printable page. Every value goes through html/template
// escaping.
func WriteHTML(w io.Writer, doc Document) error {
	return printTmpl.Execute(w, doc)
}
