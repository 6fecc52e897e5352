package core

// Timestamp layouts used across the session and history documents.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Session is the mutable working document: the checklist being edited
// for the current target under test.
type Session struct {
	TargetWebsite string    `json:"target_website"`
	StartDate     string    `json:"start_date"`
	Checklist     []Heading `json:"checklist"`
	Notes         []Note    `json:"notes"`
}

// Heading is a named group of checklist items. IDs are unique within the
// checklist and never reused after deletion.
type Heading struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item is a checkable line within a heading. IDs are scoped to the
// parent heading, so two headings may each hold an item with id 1.
type Item struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Note is a freeform annotation on the session. CreatedAt is set once at
// creation and never updated.
type Note struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// CompletedEntry is an archived snapshot of a finished session. The
// checklist and notes are deep copies taken at completion time.
type CompletedEntry struct {
	ID            int       `json:"id"`
	TargetWebsite string    `json:"target_website"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	CompletedAt   string    `json:"completed_at"`
	Checklist     []Heading `json:"checklist"`
	Notes         []Note    `json:"notes"`
}

// NewSession returns an empty session seeded with the given checklist.
func NewSession(checklist []Heading) *Session {
	if checklist == nil {
		checklist = []Heading{}
	}
	return &Session{
		TargetWebsite: "",
		StartDate:     "",
		Checklist:     checklist,
		Notes:         []Note{},
	}
}

// Clone returns a deep copy of the heading, items included.
func (h Heading) Clone() Heading {
	items := make([]Item, len(h.Items))
	copy(items, h.Items)
	return Heading{ID: h.ID, Title: h.Title, Items: items}
}

// CloneChecklist deep-copies a checklist so that later mutation of the
// source cannot alter the copy.
func CloneChecklist(checklist []Heading) []Heading {
	out := make([]Heading, 0, len(checklist))
	for _, h := range checklist {
		out = append(out, h.Clone())
	}
	return out
}

// CloneNotes deep-copies a note list.
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

// FindHeading returns the heading with the given id, or nil.
func (s *Session) FindHeading(id int) *Heading {
	for i := range s.Checklist {
		if s.Checklist[i].ID == id {
			return &s.Checklist[i]
		}
	}
	return nil
}

// FindItem returns the item with the given id, or nil.
func (h *Heading) FindItem(id int) *Item {
	for i := range h.Items {
		if h.Items[i].ID == id {
			return &h.Items[i]
		}
	}
	return nil
}

// FindNote returns the note with the given id, or nil.
func (s *Session) FindNote(id int) *Note {
	for i := range s.Notes {
		if s.Notes[i].ID == id {
			return &s.Notes[i]
		}
	}
	return nil
}

// NextHeadingID assigns ids as max existing id + 1, so deleted ids are
// never reused and gaps are never filled.
func (s *Session) NextHeadingID() int {
	max := 0
	for _, h := range s.Checklist {
		if h.ID > max {
			max = h.ID
		}
	}
	return max + 1
}

// NextItemID returns max existing item id + 1, scoped to this heading.
func (h *Heading) NextItemID() int {
	max := 0
	for _, it := range h.Items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// NextNoteID returns max existing note id + 1.
func (s *Session) NextNoteID() int {
	max := 0
	for _, n := range s.Notes {
		if n.ID > max {
			max = n.ID
		}
	}
	return max + 1
}
