package core

import (
	"encoding/json"
	"log"
	"os"
)

// TemplateLoader produces the default checklist used to seed and reset
// sessions.
type TemplateLoader interface {
	LoadDefaultChecklist() []Heading
}

// FileTemplate loads the default checklist from an external JSON file.
// The file is re-read on every call so edits take effect on the next
// reset or completion.
type FileTemplate struct {
	Path string
}

// NewFileTemplate returns a loader over the given template file.
func NewFileTemplate(path string) *FileTemplate {
	return &FileTemplate{Path: path}
}

// LoadDefaultChecklist reads the template file. A missing or unparsable
// template degrades to an empty checklist; it never fails the caller.
func (t *FileTemplate) LoadDefaultChecklist() []Heading {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("template: %s not found, using empty checklist", t.Path)
		} else {
			log.Printf("template: read %s: %v", t.Path, err)
		}
		return []Heading{}
	}

	var checklist []Heading
	if err := json.Unmarshal(data, &checklist); err != nil {
		log.Printf("template: parse %s: %v", t.Path, err)
		return []Heading{}
	}
	if checklist == nil {
		checklist = []Heading{}
	}

	return checklist
}
