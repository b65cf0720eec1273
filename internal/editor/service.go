package editor

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/storage"
)

// Service manages document lifecycle on top of a storage backend. All
// failures are reported through the error handler before they are
// returned; the caller decides whether to abort or degrade.
type Service struct {
	store     storage.Store
	errs      *errors.Handler
	sanitizer *Sanitizer
}

// NewService creates a document service.
func NewService(store storage.Store, handler *errors.Handler) *Service {
	return &Service{
		store:     store,
		errs:      handler,
		sanitizer: NewSanitizer(),
	}
}

// Create validates and persists a new document. The HTML source is
// sanitized before storage; JS must at least parse.
func (s *Service) Create(doc Document) (Document, error) {
	if doc.Title == "" {
		err := errors.New(errors.CategoryValidation, "document title is required")
		s.errs.Handle(err)
		return Document{}, err
	}
	if err := LintJS(doc.JS); err != nil {
		s.errs.Handle(err)
		return Document{}, err
	}

	doc.ID = uuid.New().String()
	doc.HTML, _ = s.sanitizer.Sanitize(doc.HTML)
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := s.put(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Get loads a document by id.
func (s *Service) Get(id string) (Document, error) {
	var doc Document
	if err := s.store.Get(id, &doc); err != nil {
		e := errors.Wrap(errors.CategoryStorage, err, fmt.Sprintf("document %s could not be loaded", id)).
			WithDetail("document_id", id)
		s.errs.Handle(e)
		return Document{}, e
	}
	return doc, nil
}

// Update replaces the sources of an existing document, preserving
// identity and creation time.
func (s *Service) Update(id string, doc Document) (Document, error) {
	existing, err := s.Get(id)
	if err != nil {
		return Document{}, err
	}
	if err := LintJS(doc.JS); err != nil {
		s.errs.Handle(err)
		return Document{}, err
	}

	// A document never loses its title: an empty incoming title keeps
	// the existing one.
	if doc.Title != "" {
		existing.Title = doc.Title
	}
	existing.HTML, _ = s.sanitizer.Sanitize(doc.HTML)
	existing.CSS = doc.CSS
	existing.JS = doc.JS
	existing.UpdatedAt = time.Now()

	if err := s.put(existing); err != nil {
		return Document{}, err
	}
	return existing, nil
}

// Delete removes a document. Deleting an absent document is a no-op,
// matching the storage contract.
func (s *Service) Delete(id string) error {
	if err := s.store.Delete(id); err != nil {
		e := errors.Wrap(errors.CategoryStorage, err, fmt.Sprintf("document %s could not be deleted", id)).
			WithDetail("document_id", id)
		s.errs.Handle(e)
		return e
	}
	return nil
}

// List returns all documents sorted by most recent update.
func (s *Service) List() ([]Document, error) {
	keys, err := s.store.Keys()
	if err != nil {
		e := errors.Wrap(errors.CategoryStorage, err, "documents could not be listed")
		s.errs.Handle(e)
		return nil, e
	}

	docs := make([]Document, 0, len(keys))
	for _, key := range keys {
		var doc Document
		if err := s.store.Get(key, &doc); err != nil {
			// A single unreadable entry should not hide the rest.
			s.errs.Handle(errors.Wrap(errors.CategoryStorage, err, "skipping unreadable document").
				WithDetail("document_id", key))
			continue
		}
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})
	return docs, nil
}

// Import parses a pasted HTML page and persists the result as a new
// document.
func (s *Service) Import(page, title string) (Document, error) {
	doc, err := ImportHTML(page)
	if err != nil {
		s.errs.Handle(err)
		return Document{}, err
	}
	if title != "" {
		doc.Title = title
	}
	return s.Create(doc)
}

// Count returns the number of stored documents.
func (s *Service) Count() int {
	keys, err := s.store.Keys()
	if err != nil {
		return 0
	}
	return len(keys)
}

func (s *Service) put(doc Document) error {
	if err := s.store.Set(doc.ID, doc); err != nil {
		e := errors.Wrap(errors.CategoryStorage, err, fmt.Sprintf("document %s could not be saved", doc.ID)).
			WithDetail("document_id", doc.ID)
		s.errs.Handle(e)
		return e
	}
	return nil
}
