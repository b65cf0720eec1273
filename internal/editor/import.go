package editor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
)

// ImportHTML splits a pasted full HTML page into the document's three
// sources: inline styles become CSS, inline scripts become JS, and the
// body markup (scripts and styles removed) becomes HTML. External
// script/style references are dropped; authors wire those through
// component adapters instead.
func ImportHTML(page string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return Document{}, errors.Wrap(errors.CategoryValidation, err, "page does not parse as HTML")
	}

	var css strings.Builder
	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		if css.Len() > 0 {
			css.WriteString("\n")
		}
		css.WriteString(strings.TrimSpace(sel.Text()))
	})

	var js strings.Builder
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		if _, external := sel.Attr("src"); external {
			return
		}
		if js.Len() > 0 {
			js.WriteString("\n")
		}
		js.WriteString(strings.TrimSpace(sel.Text()))
	})

	body := doc.Find("body")
	body.Find("script, style").Remove()
	html, err := body.Html()
	if err != nil {
		return Document{}, errors.Wrap(errors.CategoryValidation, err, "could not extract body markup")
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "Imported document"
	}

	return Document{
		Title: title,
		HTML:  strings.TrimSpace(html),
		CSS:   css.String(),
		JS:    js.String(),
	}, nil
}
