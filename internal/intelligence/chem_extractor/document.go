package chem_extractor

// Document is the annotated compound record: a tree of headed sections whose
// leaves are named information entries.  Only the fields the extractor reads
// are modelled; everything else in the upstream payload is ignored.
type Document struct {
	Record Record `json:"Record"`
}

// Record is the document root.
type Record struct {
	RecordNumber int       `json:"RecordNumber,omitempty"`
	RecordTitle  string    `json:"RecordTitle,omitempty"`
	Sections     []Section `json:"Section,omitempty"`
}

// Section is one headed node of the tree.
type Section struct {
	Heading     string        `json:"TOCHeading"`
	Sections    []Section     `json:"Section,omitempty"`
	Information []Information `json:"Information,omitempty"`
}

// Information is a named leaf entry.
type Information struct {
	Name  string `json:"Name,omitempty"`
	Value Value  `json:"Value"`
}

// Value holds marked-up strings.
type Value struct {
	Strings []StringWithMarkup `json:"StringWithMarkup,omitempty"`
}

// StringWithMarkup is a text fragment plus optional inline markup such as
// pictogram icons.
type StringWithMarkup struct {
	String string   `json:"String"`
	Markup []Markup `json:"Markup,omitempty"`
}

// Markup is an inline annotation; icons carry Type "Icon" and an image URL.
type Markup struct {
	Type string `json:"Type,omitempty"`
	URL  string `json:"URL,omitempty"`
}

const markupIcon = "Icon"

// Path is a sequence of section headings from the document root.
type Path []string

var (
	ghsClassificationPath = Path{"Safety and Hazards", "Hazards Identification", "GHS Classification"}
	iupacNamePath         = Path{"Names and Identifiers", "Computed Descriptors", "IUPAC Name"}
)

// Find descends p heading by heading, taking the first section whose heading
// matches at each level.  It returns nil when any heading is absent or the
// document itself is nil.
func (d *Document) Find(p Path) *Section {
	if d == nil || len(p) == 0 {
		return nil
	}
	level := d.Record.Sections
	var found *Section
	for _, heading := range p {
		found = nil
		for i := range level {
			if level[i].Heading == heading {
				found = &level[i]
				break
			}
		}
		if found == nil {
			return nil
		}
		level = found.Sections
	}
	return found
}

// Title is the record title, or "" for a nil document.
func (d *Document) Title() string {
	if d == nil {
		return ""
	}
	return d.Record.RecordTitle
}

// FirstString returns the first non-empty string of the entry's value.
func (i Information) FirstString() (string, bool) {
	for _, s := range i.Value.Strings {
		if s.String != "" {
			return s.String, true
		}
	}
	return "", false
}

// Icons returns the URL of every icon markup in the entry, in order.
func (i Information) Icons() []string {
	var urls []string
	for _, s := range i.Value.Strings {
		for _, m := range s.Markup {
			if m.Type == markupIcon && m.URL != "" {
				urls = append(urls, m.URL)
			}
		}
	}
	return urls
}

// Visit calls fn for each information entry of s in order.  A nil section is
// visited as empty.
func (s *Section) Visit(fn func(Information)) {
	if s == nil {
		return
	}
	for _, info := range s.Information {
		fn(info)
	}
}
