package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func (service *Service) loadTemplates() error {
	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return err
	}
	service.templates = templates
	return nil
}

// render executes a page template.
// Rendering failures are logged only; by the time they occur, parts of the page may already be out.
func (service *Service) render(writer http.ResponseWriter, name string, data any) {
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := service.templates.ExecuteTemplate(writer, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("could not render page template")
	}
}
