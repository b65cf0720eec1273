package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(storage.NewMemoryStore(), errors.NewHandler(zap.NewNop()))
}

func TestCreateAssignsIdentity(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.Create(Document{
		Title: "Quadratic explorer",
		HTML:  "<div id=\"graph\"></div>",
		CSS:   "#graph { height: 400px; }",
		JS:    "console.log('ready');",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)

	loaded, err := svc.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, loaded.ID)
	assert.Equal(t, "Quadratic explorer", loaded.Title)
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(Document{HTML: "<p>untitled</p>"})
	require.Error(t, err)
	assert.Equal(t, errors.CategoryValidation, errors.CategoryOf(err))
}

func TestCreateRejectsBrokenJS(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(Document{Title: "broken", JS: "function ("})
	require.Error(t, err)
	assert.Equal(t, errors.CategoryValidation, errors.CategoryOf(err))
}

func TestCreateSanitizesHTML(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.Create(Document{
		Title: "sneaky",
		HTML:  "<div onclick=\"steal()\">hi</div><script>steal()</script>",
	})
	require.NoError(t, err)

	assert.NotContains(t, doc.HTML, "onclick")
	assert.NotContains(t, doc.HTML, "<script")
	assert.Contains(t, doc.HTML, "hi")
}

func TestGetMissingDocument(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get("nope")
	require.Error(t, err)
	assert.Equal(t, errors.CategoryStorage, errors.CategoryOf(err))
	assert.Contains(t, err.Error(), "nope")
}

func TestUpdatePreservesIdentity(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(Document{Title: "v1", HTML: "<p>one</p>"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, Document{Title: "v2", HTML: "<p>two</p>"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)
	assert.Equal(t, "v2", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(created.CreatedAt))
}

func TestUpdateWithEmptyTitleKeepsExisting(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(Document{Title: "keep me", HTML: "<p>one</p>"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, Document{HTML: "<p>two</p>"})
	require.NoError(t, err)
	assert.Equal(t, "keep me", updated.Title)

	loaded, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", loaded.Title)
}

func TestDeleteThenGetFails(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.Create(Document{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(doc.ID))
	_, err = svc.Get(doc.ID)
	assert.Error(t, err)
}

func TestListReturnsAll(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(Document{Title: "a"})
	require.NoError(t, err)
	_, err = svc.Create(Document{Title: "b"})
	require.NoError(t, err)

	docs, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, 2, svc.Count())
}

func TestImport(t *testing.T) {
	svc := newTestService(t)

	page := `<!DOCTYPE html>
<html>
<head>
<title>Parabola Demo</title>
<style>body { margin: 0; }</style>
</head>
<body>
<div id="calculator"></div>
<script>var elt = document.getElementById('calculator');</script>
<script src="https://www.desmos.com/api/v1.9/calculator.js"></script>
</body>
</html>`

	doc, err := svc.Import(page, "")
	require.NoError(t, err)

	assert.Equal(t, "Parabola Demo", doc.Title)
	assert.Contains(t, doc.HTML, "calculator")
	assert.NotContains(t, doc.HTML, "<script")
	assert.Contains(t, doc.CSS, "margin: 0")
	assert.Contains(t, doc.JS, "getElementById")
	assert.NotContains(t, doc.JS, "desmos.com")
}

func TestLintJS(t *testing.T) {
	assert.NoError(t, LintJS(""))
	assert.NoError(t, LintJS("const x = 1; console.log(x);"))
	assert.Error(t, LintJS("const = broken"))
}
