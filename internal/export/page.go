package export

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<canvas id="clusters" width="{{.Width}}" height="{{.Height}}"></canvas>
<script>
const canvas = document.getElementById("clusters");
const img = new Image();
img.onload = function () {
  canvas.getContext("2d").drawImage(img, 0, 0, canvas.width, canvas.height);
};
img.src = {{.Image}};
</script>
</body>
</html>
`))

// Page describes the generated HTML wrapper around a snapshot.
type Page struct {
	Title  string
	Image  string // snapshot path relative to the page
	Width  int
	Height int
}

// Write renders the page to w.
func (p Page) Write(w io.Writer) error {
	return pageTemplate.Execute(w, p)
}
