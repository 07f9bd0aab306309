package email

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"
)

//go:embed templates/*
var embeddedTemplates embed.FS

const (
	TemplateContactForm = "contact_form"
)

// TemplateManager реализует TemplateRenderer.
// *.html разбираются html/template, *.txt - text/template.
type TemplateManager struct {
	html  map[string]*htmltemplate.Template
	text  map[string]*texttemplate.Template
	mutex sync.RWMutex
}

// NewTemplateManager создает пустой менеджер шаблонов
func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		html: make(map[string]*htmltemplate.Template),
		text: make(map[string]*texttemplate.Template),
	}
}

// NewDefaultTemplateManager загружает встроенные шаблоны писем
func NewDefaultTemplateManager() (*TemplateManager, error) {
	tm := NewTemplateManager()
	if err := tm.LoadFS(embeddedTemplates, "templates"); err != nil {
		return nil, err
	}
	return tm, nil
}

// Render рендерит HTML шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.html[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// RenderText рендерит текстовый шаблон с данными
func (tm *TemplateManager) RenderText(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.text[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("text template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate добавляет HTML шаблон
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := htmltemplate.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.html[name] = tpl
	tm.mutex.Unlock()
	return nil
}

// AddTextTemplate добавляет текстовый шаблон
func (tm *TemplateManager) AddTextTemplate(name string, templateStr string) error {
	tpl, err := texttemplate.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.text[name] = tpl
	tm.mutex.Unlock()
	return nil
}

// LoadFS загружает шаблоны из файловой системы
func (tm *TemplateManager) LoadFS(fsys fs.FS, dir string) error {
	return fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if ext != ".html" && ext != ".txt" {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		if ext == ".html" {
			err = tm.AddTemplate(name, string(content))
		} else {
			err = tm.AddTextTemplate(name, string(content))
		}
		if err != nil {
			return fmt.Errorf("failed to add template %s: %w", name, err)
		}
		return nil
	})
}

// TemplateNames возвращает список имен загруженных HTML шаблонов
func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.html))
	for name := range tm.html {
		names = append(names, name)
	}
	return names
}
