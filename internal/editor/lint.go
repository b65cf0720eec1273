package editor

import (
	"github.com/dop251/goja"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
)

// LintJS compiles the snippet's JavaScript without executing it. A
// parse failure is a validation error carrying the parser message so
// the editor can surface it inline.
func LintJS(src string) error {
	if src == "" {
		return nil
	}
	if _, err := goja.Compile("snippet.js", src, false); err != nil {
		return errors.Wrap(errors.CategoryValidation, err, "javascript does not parse").
			WithDetail("source", "js")
	}
	return nil
}
