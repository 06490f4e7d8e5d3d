package httpx

import (
	"fmt"
	"html"
	"io"
	"net/http"
)

const defaultHelloName = "World!!!"

// rootHandler handles GET /.
func rootHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Hello, World!")
}

// helloHandler handles GET /hello?name=.
func helloHandler(w http.ResponseWriter, r *http.Request) {
	name := defaultHelloName
	if r.URL.Query().Has("name") {
		name = r.URL.Query().Get("name")
	}
	writeGreeting(w, name)
}

// hello2Handler handles GET /hello2/{name}.
func hello2Handler(w http.ResponseWriter, r *http.Request) {
	writeGreeting(w, r.PathValue("name"))
}

func writeGreeting(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, "<h1>Hello, <strong>%s</strong></h1>", html.EscapeString(name))
}
