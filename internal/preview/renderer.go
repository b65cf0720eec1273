// Package preview assembles documents into sandboxed iframe payloads.
package preview

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/editor"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
)

// Frame is what the client mounts: srcdoc content plus the sandbox
// attribute the iframe must carry. The frame id ties runtime errors
// reported from inside the frame back to this document.
type Frame struct {
	FrameID  string `json:"frame_id"`
	Srcdoc   string `json:"srcdoc"`
	Sandbox  string `json:"sandbox"`
	Document string `json:"document_id"`
}

var frameTemplate = template.Must(template.New("frame").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>{{.CSS}}</style>
</head>
<body>
{{.HTML}}
{{range .Widgets}}{{.}}
{{end}}<script>{{.JS}}</script>
</body>
</html>`))

// Renderer builds preview frames. The document HTML is sanitized at
// save time; widget markup comes from registered adapter factories and
// is trusted as template HTML.
type Renderer struct {
	sandbox string
	errs    *errors.Handler
}

// NewRenderer creates a renderer applying the given iframe sandbox
// attribute to every frame.
func NewRenderer(sandbox string, handler *errors.Handler) *Renderer {
	return &Renderer{sandbox: sandbox, errs: handler}
}

// Render assembles a frame for doc, appending any widget markup after
// the document body so mount containers exist before widget scripts
// run.
func (r *Renderer) Render(doc editor.Document, widgetMarkup []string) (Frame, error) {
	widgets := make([]template.HTML, 0, len(widgetMarkup))
	for _, m := range widgetMarkup {
		widgets = append(widgets, template.HTML(m))
	}

	var buf bytes.Buffer
	err := frameTemplate.Execute(&buf, struct {
		CSS     template.CSS
		HTML    template.HTML
		JS      template.JS
		Widgets []template.HTML
	}{
		CSS:     template.CSS(doc.CSS),
		HTML:    template.HTML(doc.HTML),
		JS:      template.JS(doc.JS),
		Widgets: widgets,
	})
	if err != nil {
		e := errors.Wrap(errors.CategoryRuntime, err, fmt.Sprintf("preview for document %s failed to render", doc.ID)).
			WithDetail("document_id", doc.ID)
		r.errs.Handle(e)
		return Frame{}, e
	}

	return Frame{
		FrameID:  "preview-" + doc.ID,
		Srcdoc:   buf.String(),
		Sandbox:  r.sandbox,
		Document: doc.ID,
	}, nil
}
