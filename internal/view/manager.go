package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

//go:embed templates
var embedded embed.FS

const (
	layoutsDir  = "layouts"
	pagesDir    = "pages"
	partialsDir = "partials"
	ext         = ".html"

	// ContentKey is the layout variable that receives the rendered content view
	ContentKey = "content"
)

var ErrViewNotFound = errors.New("view not found")

// Manager owns the parsed template sets. All methods are safe for concurrent use.
type Manager struct {
	logger  *zap.Logger
	fsys    fs.FS
	reload  bool
	layouts map[string]*template.Template
	pages   map[string]*template.Template
	mu      sync.RWMutex
}

// Embedded returns the template set compiled into the binary
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewManager parses every template in fsys. With reload set, templates are
// re-read before each render, which is meant for editing templates on disk.
func NewManager(logger *zap.Logger, fsys fs.FS, reload bool) (*Manager, error) {
	m := &Manager{
		logger: logger.With(zap.String("component", "view")),
		fsys:   fsys,
		reload: reload,
	}

	if err := m.Refresh(); err != nil {
		return nil, err
	}

	m.logger.Info("View manager initialized",
		zap.Int("layouts", len(m.layouts)),
		zap.Strings("pages", m.Names()),
		zap.Bool("reload", reload),
	)
	return m, nil
}

// NewManagerFromDir uses dir on disk, or the embedded set when dir is empty
func NewManagerFromDir(logger *zap.Logger, dir string, reload bool) (*Manager, error) {
	if dir == "" {
		return NewManager(logger, Embedded(), false)
	}
	return NewManager(logger, os.DirFS(dir), reload)
}

// Refresh re-parses all templates. On failure the previous set stays active.
func (m *Manager) Refresh() error {
	base := template.New("").Funcs(funcMap())

	partials, err := m.list(partialsDir)
	if err != nil {
		return err
	}
	if len(partials) > 0 {
		if base, err = base.ParseFS(m.fsys, partials...); err != nil {
			m.logger.Error("failed to parse partials", zap.Error(err))
			return fmt.Errorf("parse partials: %w", err)
		}
	}

	layouts, err := m.parseEach(base, layoutsDir)
	if err != nil {
		return err
	}
	pages, err := m.parseEach(base, pagesDir)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.layouts = layouts
	m.pages = pages
	m.mu.Unlock()

	m.logger.Debug("Templates loaded", zap.Int("layouts", len(layouts)), zap.Int("pages", len(pages)))
	return nil
}

// list returns the template files under dir, recursively. A missing dir is empty.
func (m *Manager) list(dir string) ([]string, error) {
	var files []string
	err := fs.WalkDir(m.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ext) {
			files = append(files, p)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s templates: %w", dir, err)
	}
	return files, nil
}

// parseEach gives every file under dir its own clone of base, keyed by the
// path relative to dir without extension.
func (m *Manager) parseEach(base *template.Template, dir string) (map[string]*template.Template, error) {
	files, err := m.list(dir)
	if err != nil {
		return nil, err
	}

	sets := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(strings.TrimPrefix(file, dir+"/"), ext)

		src, err := fs.ReadFile(m.fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", file, err)
		}

		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", file, err)
		}
		if _, err := set.New(name).Parse(string(src)); err != nil {
			m.logger.Error("failed to parse template", zap.String("file", file), zap.Error(err))
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		sets[name] = set
	}
	return sets, nil
}

func (m *Manager) lookup(sets func() map[string]*template.Template, kind, name string) (*template.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := sets()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrViewNotFound, kind, name)
	}
	return t, nil
}

func (m *Manager) execute(t *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Render executes a content view on its own. Output is buffered so a failed
// render writes nothing.
func (m *Manager) Render(w io.Writer, v *View) error {
	if err := m.maybeRefresh(); err != nil {
		return err
	}
	out, err := m.renderPage(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func (m *Manager) maybeRefresh() error {
	if !m.reload {
		return nil
	}
	return m.Refresh()
}

func (m *Manager) renderPage(v *View) ([]byte, error) {
	t, err := m.lookup(func() map[string]*template.Template { return m.pages }, "page", v.Name())
	if err != nil {
		return nil, err
	}
	return m.execute(t, v.Name(), v.vars)
}

// RenderLayout renders content, assigns it to the layout as ContentKey and
// renders the layout with the remaining vars.
func (m *Manager) RenderLayout(w io.Writer, layout string, content *View, vars map[string]any) error {
	if err := m.maybeRefresh(); err != nil {
		return err
	}
	body, err := m.renderPage(content)
	if err != nil {
		return err
	}

	t, err := m.lookup(func() map[string]*template.Template { return m.layouts }, "layout", layout)
	if err != nil {
		return err
	}

	data := make(map[string]any, len(vars)+1)
	for k, val := range vars {
		data[k] = val
	}
	data[ContentKey] = template.HTML(body)

	out, err := m.execute(t, layout, data)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Names lists the loaded page names in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.pages))
	for name := range m.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
