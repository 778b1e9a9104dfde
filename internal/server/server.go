package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/pesikj/political-pulse-mapper/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var md = goldmark.New()

// Server exposes the three read endpoints as a JSON API plus a minimal
// server-rendered view of the same data.
type Server struct {
	store store.Client
	pages map[string]*template.Template
	mux   *http.ServeMux
}

// New creates a new Server over the given store client.
func New(st store.Client) (*Server, error) {
	funcMap := template.FuncMap{
		"markdown": renderMarkdown,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	// Parse base template first
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	// For each page template, clone the base and parse the page into the clone.
	// This gives each page its own {{define "content"}} and {{define "title"}}.
	pageNames := []string{"index.html", "country.html", "party.html"}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}
		_, err = clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = clone
	}

	s := &Server{store: st, pages: pages, mux: http.NewServeMux()}
	s.routes()
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	// Static files
	staticSub, _ := fs.Sub(staticFS, "static")
	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// JSON read API
	s.mux.HandleFunc("/api/countries", s.handleAPICountries)
	s.mux.HandleFunc("/api/parties", s.handleAPIParties)
	s.mux.HandleFunc("/api/policies", s.handleAPIPolicies)

	// HTML pages
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/country/", s.handleCountry)
	s.mux.HandleFunc("/party/", s.handleParty)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.pages[name]
	if !ok {
		log.Printf("Template %s not found", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
	}
}

func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String()) //nolint: gosec
}

// Serve starts the HTTP server on the given port.
func Serve(st store.Client, port int) error {
	srv, err := New(st)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	log.Printf("Server listening on http://%s", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
