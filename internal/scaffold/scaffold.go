// Package scaffold provides the embedded starter configuration file.
package scaffold

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

// ConfigTemplate contains the commented configuration file template.
//
//go:embed config.yaml.tmpl
var ConfigTemplate string

// Data holds the values substituted into the template.
type Data struct {
	Directories []string
	Depth       int
	Months      int
	MinSize     string
	LogFile     string
}

// Render renders the configuration file with the given values.
func Render(data Data) (string, error) {
	tmpl, err := template.New("config").Parse(ConfigTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing config template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering config template: %w", err)
	}

	return buf.String(), nil
}
