package render

import (
	"embed"
	"strings"

	"github.com/TFMV/gridbox/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

func loadTemplate(name string) (string, error) {
	data, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return "", errors.Wrapf(ErrBadTemplate, err, "template %q not embedded", name)
	}
	return string(data), nil
}

// replaceValue substitutes pattern with value after checking that the
// pattern occurs exactly count times, so a template edit that moves a
// marker fails loudly instead of producing a broken page.
func replaceValue(tmpl, pattern, value string, count int) (string, error) {
	if got := strings.Count(tmpl, pattern); got != count {
		return "", errors.Newf(ErrBadTemplate,
			"template marker %q found %d times, expected %d", pattern, got, count)
	}
	return strings.ReplaceAll(tmpl, pattern, value), nil
}
