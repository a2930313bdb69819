package web

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/davidlopes/tinge/internal/theme"
)

// themeResponse is the JSON shape returned by /api/theme.
type themeResponse struct {
	Mode   string            `json:"mode"`
	Radius string            `json:"radius"`
	Source string            `json:"source,omitempty"`
	Roles  map[string]string `json:"roles"`
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	t, source, err := s.provider.Current(r.Context())
	if err != nil {
		s.log.Error("loading theme", "error", err)
		http.Error(w, "no theme available", http.StatusNotFound)
		return
	}

	resp := themeResponse{
		Mode:   string(t.Mode),
		Radius: t.Radius,
		Source: source,
		Roles:  make(map[string]string, len(t.Roles)),
	}
	for role, value := range t.Roles {
		resp.Roles[string(role)] = value
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("encoding theme response", "error", err)
	}
}

type previewData struct {
	Mode     string
	Radius   string
	Source   string
	Vars     template.CSS
	Swatches []swatch
}

type swatch struct {
	Role  string
	Value string
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	t, source, err := s.provider.Current(r.Context())
	if err != nil {
		s.log.Error("loading theme", "error", err)
		http.Error(w, "no theme available", http.StatusNotFound)
		return
	}

	data := previewData{
		Mode:   string(t.Mode),
		Radius: t.Radius,
		Source: source,
	}
	vars := ""
	for _, d := range t.Declarations() {
		vars += "  " + d.Name + ": " + d.Value + ";\n"
	}
	data.Vars = template.CSS(vars)
	for _, role := range theme.AllRoles() {
		if value, ok := t.Roles[role]; ok {
			data.Swatches = append(data.Swatches, swatch{Role: string(role), Value: value})
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewTemplate.Execute(w, data); err != nil {
		s.log.Error("rendering preview", "error", err)
	}
}

var previewTemplate = template.Must(template.New("preview").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>tinge preview</title>
<style>
:root {
{{.Vars}}}
body {
  margin: 0;
  padding: 2rem;
  font-family: system-ui, sans-serif;
  background: var(--background);
  color: var(--foreground);
}
h1 { font-size: 1.25rem; }
.meta { color: var(--muted-foreground); font-size: 0.85rem; margin-bottom: 2rem; }
.grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(180px, 1fr));
  gap: 1rem;
}
.swatch {
  border: 1px solid var(--border);
  border-radius: var(--radius);
  overflow: hidden;
  background: var(--card);
}
.swatch .chip { height: 72px; }
.swatch .label {
  padding: 0.5rem 0.75rem;
  font-size: 0.8rem;
}
.swatch .value { color: var(--muted-foreground); font-size: 0.7rem; }
.demo {
  margin-top: 2rem;
  padding: 1.5rem;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: var(--card);
  color: var(--card-foreground);
}
.demo button {
  border: none;
  border-radius: var(--radius);
  padding: 0.5rem 1.25rem;
  margin-right: 0.5rem;
  font-size: 0.85rem;
  cursor: pointer;
}
.demo .primary { background: var(--primary); color: var(--primary-foreground); }
.demo .secondary { background: var(--secondary); color: var(--secondary-foreground); }
.demo .destructive { background: var(--destructive); color: var(--destructive-foreground); }
</style>
</head>
<body>
<h1>tinge preview</h1>
<p class="meta">{{.Mode}} mode{{if .Source}} &middot; {{.Source}}{{end}} &middot; radius {{.Radius}}</p>
<div class="grid">
{{range .Swatches}}  <div class="swatch">
    <div class="chip" style="background: {{.Value}}"></div>
    <div class="label">{{.Role}}<div class="value">{{.Value}}</div></div>
  </div>
{{end}}</div>
<div class="demo">
  <p>Card surface with sample actions.</p>
  <button class="primary">Primary</button>
  <button class="secondary">Secondary</button>
  <button class="destructive">Delete</button>
</div>
</body>
</html>
`))
