package handler

import "html/template"

// redirectPageData feeds the deep-link redirect page.
type redirectPageData struct {
	DeepLink      string
	Fallback      string
	OGTitle       string
	OGDescription string
	OGImageURL    string
}

// redirectPage is served to mobile clients with a configured deep link. The
// page tries to open the app immediately; if nothing handles the scheme the
// timer sends the visitor to the fallback URL. Crawlers that fetch the page
// for previews read the Open Graph tags and never run the script.
var redirectPage = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{- if .OGTitle}}
<meta property="og:title" content="{{.OGTitle}}">
<title>{{.OGTitle}}</title>
{{- else}}
<title>Redirecting…</title>
{{- end}}
{{- if .OGDescription}}
<meta property="og:description" content="{{.OGDescription}}">
{{- end}}
{{- if .OGImageURL}}
<meta property="og:image" content="{{.OGImageURL}}">
{{- end}}
</head>
<body>
<p>Opening the app… <a href="{{.Fallback}}">Continue in browser</a></p>
<script>
window.location.href = {{.DeepLink}};
setTimeout(function () { window.location.href = {{.Fallback}}; }, 1500);
</script>
</body>
</html>
`))
