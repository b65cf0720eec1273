package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/component"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/container"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/editor"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/infrastructure/monitoring"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/mathapi"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/preview"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/ws"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	documents  *editor.Service
	components *container.FactoryContainer
	renderer   *preview.Renderer
	stream     *ws.Handler
	metrics    *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(
	documents *editor.Service,
	components *container.FactoryContainer,
	renderer *preview.Renderer,
	stream *ws.Handler,
	metrics *monitoring.Metrics,
) *Handlers {
	return &Handlers{
		documents:  documents,
		components: components,
		renderer:   renderer,
		stream:     stream,
		metrics:    metrics,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Content Hub (Go)",
		"version": "0.2.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"container": h.components.Stats(),
		"documents": gin.H{"stored": h.documents.Count()},
	})
}

// documentRequest is the write payload for create and update.
type documentRequest struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
	CSS   string `json:"css"`
	JS    string `json:"js"`
}

// CreateDocument creates a new document
func (h *Handlers) CreateDocument(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documents.Create(editor.Document{
		Title: req.Title,
		HTML:  req.HTML,
		CSS:   req.CSS,
		JS:    req.JS,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.metrics.SetDocumentsStored(h.documents.Count())
	c.JSON(http.StatusCreated, doc)
}

// ListDocuments lists all stored documents
func (h *Handlers) ListDocuments(c *gin.Context) {
	docs, err := h.documents.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": docs,
		"count":     len(docs),
	})
}

// GetDocument gets a document by id
func (h *Handlers) GetDocument(c *gin.Context) {
	doc, err := h.documents.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateDocument replaces a document's sources
func (h *Handlers) UpdateDocument(c *gin.Context) {
	id := c.Param("id")

	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documents.Update(id, editor.Document{
		Title: req.Title,
		HTML:  req.HTML,
		CSS:   req.CSS,
		JS:    req.JS,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Open editor sessions watching this document reload their preview.
	h.stream.NotifyDocument(id)

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes a document
func (h *Handlers) DeleteDocument(c *gin.Context) {
	id := c.Param("id")

	if err := h.documents.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.metrics.SetDocumentsStored(h.documents.Count())
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"document_id": id,
	})
}

// ImportDocument parses a pasted HTML page into a new document
func (h *Handlers) ImportDocument(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
		Page  string `json:"page" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documents.Import(req.Page, req.Title)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.metrics.SetDocumentsStored(h.documents.Count())
	c.JSON(http.StatusCreated, doc)
}

// ListComponents lists registered component factories grouped by type
func (h *Handlers) ListComponents(c *gin.Context) {
	factories := make(map[string][]string)
	for _, t := range h.components.Types() {
		for _, f := range h.components.FactoriesForType(t) {
			factories[t] = append(factories[t], f.FactoryID())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"factories": factories,
		"stats":     h.components.Stats(),
	})
}

// CreateComponent builds a component instance from a registered factory
func (h *Handlers) CreateComponent(c *gin.Context) {
	var req struct {
		ComponentType string           `json:"component_type" binding:"required"`
		FactoryID     string           `json:"factory_id" binding:"required"`
		Config        component.Config `json:"config"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instance, err := h.components.CreateComponent(req.ComponentType, req.FactoryID, req.Config)
	if err != nil {
		h.metrics.RecordFactoryLookup("miss")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.metrics.RecordFactoryLookup("hit")
	h.metrics.RecordComponentCreated(req.ComponentType, req.FactoryID)

	c.JSON(http.StatusOK, gin.H{
		"component_type": req.ComponentType,
		"factory_id":     req.FactoryID,
		"component":      instance,
	})
}

// PreviewDocument renders a document into a sandboxed frame
func (h *Handlers) PreviewDocument(c *gin.Context) {
	doc, err := h.documents.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	frame, err := h.renderer.Render(doc, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.metrics.IncPreviewRenders()
	c.JSON(http.StatusOK, frame)
}

// PreviewDocumentWithWidgets renders a document with math widgets built
// from registered factories mounted into the frame
func (h *Handlers) PreviewDocumentWithWidgets(c *gin.Context) {
	doc, err := h.documents.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Widgets []struct {
			FactoryID string           `json:"factory_id" binding:"required"`
			Config    component.Config `json:"config"`
		} `json:"widgets"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	markup := make([]string, 0, len(req.Widgets))
	for _, w := range req.Widgets {
		instance, err := h.components.CreateComponent(mathapi.ComponentType, w.FactoryID, w.Config)
		if err != nil {
			h.metrics.RecordFactoryLookup("miss")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.metrics.RecordFactoryLookup("hit")
		h.metrics.RecordComponentCreated(mathapi.ComponentType, w.FactoryID)

		widget, ok := instance.(*mathapi.Widget)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "factory produced an unexpected component"})
			return
		}
		markup = append(markup, widget.Markup)
	}

	frame, err := h.renderer.Render(doc, markup)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.metrics.IncPreviewRenders()
	c.JSON(http.StatusOK, frame)
}
