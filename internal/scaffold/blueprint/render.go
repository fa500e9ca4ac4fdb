package blueprint

import (
	"bytes"
	"text/template"

	"github.com/devkent/goboot/internal/scaffold/model"
)

// render substitutes vars into a single asset. Assets use plain
// text/template references ({{.ProjectName}}, {{.Module}}); anything
// beyond flat variable substitution is out of scope.
func render(name string, raw []byte, vars model.Vars) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
