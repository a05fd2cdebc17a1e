package http

import (
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/kjstillabower/weather-chat-service/internal/observability"
)

type pageData struct {
	Query    string
	Reply    string
	HasReply bool
	Error    string
}

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// renderReply escapes text and then turns **bold** spans into <strong> elements.
func renderReply(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)
	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"reply": renderReply,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Weather Chatbot</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 3rem auto; padding: 0 1rem; }
form { display: flex; gap: .5rem; }
input[type=text] { flex: 1; padding: .5rem; }
.reply { margin-top: 1.5rem; padding: 1rem; background: #f2f6fa; border-radius: .5rem; }
.error { margin-top: 1.5rem; color: #a40000; }
</style>
</head>
<body>
<h1>Weather Chatbot</h1>
<form method="POST" action="/">
<input type="text" name="query" value="{{.Query}}" placeholder="What's the weather in Karachi?" autofocus>
<button type="submit">Ask</button>
</form>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
{{if .HasReply}}<div class="reply">{{reply .Reply}}</div>{{end}}
</body>
</html>
`))

func renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		observability.LoggerFromContext(r.Context()).Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(b.String()))
}
