package web

import "html/template"

type homePageData struct {
	Stats    homeStats
	TodosURL string
}

type homeStats struct {
	Total int
	Open  int
	Done  int
}

const homeTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>hecho</title>
</head>
<body>
<h1>hecho</h1>
<p>{{.Stats.Total}} items: {{.Stats.Open}} open, {{.Stats.Done}} done.</p>
<p><a href="{{.TodosURL}}">Browse todos</a></p>
</body>
</html>
`

func newTemplates() *template.Template {
	return template.Must(template.New("home").Parse(homeTemplate))
}
