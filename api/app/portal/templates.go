package portal

import (
	"html/template"
	"io/fs"
)

func mustLoadTemplate(fs fs.FS, location string) (*template.Template, error) {
	template, err := template.ParseFS(fs, location)
	if err != nil {
		return nil, err
	}
	return template, nil
}
