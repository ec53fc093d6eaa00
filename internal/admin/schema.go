// Package admin implements the dashboard's one reusable behavior: a generic
// editor/list controller for a REST resource family. Each screen of the
// dashboard is an instance of Controller bound to a Schema; the screens only
// add presentation.
package admin

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindLongText FieldKind = "longtext"
	KindNumber   FieldKind = "number"
	KindFile     FieldKind = "file"
	KindFiles    FieldKind = "files"
)

type Shape string

const (
	Collection Shape = "collection"
	Singleton  Shape = "singleton"
)

type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

func (f Field) IsFile() bool {
	return f.Kind == KindFile || f.Kind == KindFiles
}

// Schema describes one resource family: where it lives, whether it is a list
// or a single record, and which fields its editor form carries.
type Schema struct {
	Family   string
	Basepath string
	// CreatePath overrides the create endpoint for families that do not
	// POST to their base path (e.g. "/api/content/upload").
	CreatePath string
	// ListPath overrides the read endpoint (e.g. "/api/video/latest").
	ListPath string
	Shape    Shape
	Fields   []Field
}

func (s Schema) listPath() string {
	if s.ListPath != "" {
		return s.ListPath
	}
	return s.Basepath
}

func (s Schema) createPath() string {
	if s.CreatePath != "" {
		return s.CreatePath
	}
	return s.Basepath
}

func (s Schema) itemPath(id string) string {
	return s.Basepath + "/" + id
}

// HasFiles reports whether the family submits multipart payloads.
func (s Schema) HasFiles() bool {
	for _, f := range s.Fields {
		if f.IsFile() {
			return true
		}
	}
	return false
}

func (s Schema) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
