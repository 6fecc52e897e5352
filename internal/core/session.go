package core

import (
	"strings"
	"sync"
	"time"

	"github.com/Greninja110/QA-Checklist/internal/storage"
)

// SessionManager owns the current-session document. Every operation is
// an atomic load-mutate-save of the whole document, serialized by a
// mutex. A session that is absent or corrupt on load is self-healed
// from the default checklist template; callers never see "no session".
//
// Mutating operations that reference a heading, item, or note by id
// return an explicit found flag when the id does not exist. The API
// layer currently preserves the original silent-success contract and
// ignores the flag, but the information is surfaced here so that
// decision lives in one place.
type SessionManager struct {
	mu       sync.Mutex
	store    *storage.Store
	template TemplateLoader
	history  *HistoryManager
	now      func() time.Time
}

// NewSessionManager returns a session manager. Completion appends to
// history, so the manager holds a reference to it; lock order is always
// session before history.
func NewSessionManager(store *storage.Store, template TemplateLoader, history *HistoryManager) *SessionManager {
	return &SessionManager{
		store:    store,
		template: template,
		history:  history,
		now:      time.Now,
	}
}

// fresh builds a reset session around a fresh template load, so edits to
// the template file take effect here.
func (m *SessionManager) fresh() *Session {
	return NewSession(m.template.LoadDefaultChecklist())
}

// load reads the session document, self-healing when absent. The healed
// session is persisted before being returned.
func (m *SessionManager) load() (*Session, error) {
	var sess Session
	if m.store.Load(storage.SessionDocument, &sess) {
		if sess.Checklist == nil {
			sess.Checklist = []Heading{}
		}
		if sess.Notes == nil {
			sess.Notes = []Note{}
		}
		return &sess, nil
	}

	healed := m.fresh()
	if err := m.store.Save(storage.SessionDocument, healed); err != nil {
		return nil, err
	}
	return healed, nil
}

func (m *SessionManager) save(sess *Session) error {
	return m.store.Save(storage.SessionDocument, sess)
}

// Get returns the current session, healing it first if needed.
func (m *SessionManager) Get() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.load()
}

// UpdateInfo sets the target website and/or start date. Nil fields are
// left untouched.
func (m *SessionManager) UpdateInfo(targetWebsite, startDate *string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return nil, err
	}

	if targetWebsite != nil {
		sess.TargetWebsite = *targetWebsite
	}
	if startDate != nil {
		sess.StartDate = *startDate
	}

	if err := m.save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ToggleItem sets the checked state of an item. The found flag is false
// when the heading or item does not exist; the document is saved either
// way (unchanged in the miss case).
func (m *SessionManager) ToggleItem(headingID, itemID int, checked bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return false, err
	}

	found := false
	if h := sess.FindHeading(headingID); h != nil {
		if it := h.FindItem(itemID); it != nil {
			it.Checked = checked
			found = true
		}
	}

	if err := m.save(sess); err != nil {
		return found, err
	}
	return found, nil
}

// AddHeading appends a heading with the next id. The title is trimmed;
// an empty result is a validation error.
func (m *SessionManager) AddHeading(title string) (*Heading, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationErr("title is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return nil, err
	}

	heading := Heading{
		ID:    sess.NextHeadingID(),
		Title: title,
		Items: []Item{},
	}
	sess.Checklist = append(sess.Checklist, heading)

	if err := m.save(sess); err != nil {
		return nil, err
	}
	return &heading, nil
}

// EditHeading replaces a heading's title. Missing ids report found=false.
func (m *SessionManager) EditHeading(id int, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, validationErr("title is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return false, err
	}

	found := false
	if h := sess.FindHeading(id); h != nil {
		h.Title = title
		found = true
	}

	if err := m.save(sess); err != nil {
		return found, err
	}
	return found, nil
}

// DeleteHeading removes a heading and its items. Deleting a missing id
// leaves the document unchanged and still succeeds.
func (m *SessionManager) DeleteHeading(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return err
	}

	kept := make([]Heading, 0, len(sess.Checklist))
	for _, h := range sess.Checklist {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	sess.Checklist = kept

	return m.save(sess)
}

// AddItem appends an unchecked item to a heading. The item id is
// max existing id + 1 scoped to that heading. A missing heading reports
// found=false with no item added.
func (m *SessionManager) AddItem(headingID int, text string) (*Item, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false, validationErr("text is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return nil, false, err
	}

	var item *Item
	if h := sess.FindHeading(headingID); h != nil {
		h.Items = append(h.Items, Item{
			ID:      h.NextItemID(),
			Text:    text,
			Checked: false,
		})
		item = &h.Items[len(h.Items)-1]
	}

	if err := m.save(sess); err != nil {
		return nil, item != nil, err
	}
	if item == nil {
		return nil, false, nil
	}
	added := *item
	return &added, true, nil
}

// EditItem replaces an item's text. Missing ids report found=false.
func (m *SessionManager) EditItem(headingID, itemID int, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, validationErr("text is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return false, err
	}

	found := false
	if h := sess.FindHeading(headingID); h != nil {
		if it := h.FindItem(itemID); it != nil {
			it.Text = text
			found = true
		}
	}

	if err := m.save(sess); err != nil {
		return found, err
	}
	return found, nil
}

// DeleteItem removes an item from a heading; a no-op if either id is
// missing.
func (m *SessionManager) DeleteItem(headingID, itemID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return err
	}

	if h := sess.FindHeading(headingID); h != nil {
		kept := make([]Item, 0, len(h.Items))
		for _, it := range h.Items {
			if it.ID != itemID {
				kept = append(kept, it)
			}
		}
		h.Items = kept
	}

	return m.save(sess)
}

// AddNote appends a note stamped with the current time.
func (m *SessionManager) AddNote(text string) (*Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationErr("text is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return nil, err
	}

	note := Note{
		ID:        sess.NextNoteID(),
		Text:      text,
		CreatedAt: m.now().Format(DateTimeLayout),
	}
	sess.Notes = append(sess.Notes, note)

	if err := m.save(sess); err != nil {
		return nil, err
	}
	return &note, nil
}

// EditNote replaces a note's text; created_at is left alone. Missing ids
// report found=false.
func (m *SessionManager) EditNote(id int, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, validationErr("text is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return false, err
	}

	found := false
	if n := sess.FindNote(id); n != nil {
		n.Text = text
		found = true
	}

	if err := m.save(sess); err != nil {
		return found, err
	}
	return found, nil
}

// DeleteNote removes a note by id; a no-op if missing.
func (m *SessionManager) DeleteNote(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return err
	}

	kept := make([]Note, 0, len(sess.Notes))
	for _, n := range sess.Notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	sess.Notes = kept

	return m.save(sess)
}

// Complete archives the current session into history and resets it.
// The archived checklist and notes are deep copies, so mutating the
// reset session cannot retroactively alter history. An empty endDate
// defaults to today. Both the history write and the session reset must
// succeed; if the history write lands and the reset fails, the caller
// gets an error and must re-attempt the reset (no rollback).
func (m *SessionManager) Complete(endDate string) (*CompletedEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.load()
	if err != nil {
		return nil, err
	}

	if sess.TargetWebsite == "" {
		return nil, validationErr("target website is required")
	}

	if endDate == "" {
		endDate = m.now().Format(DateLayout)
	}

	entry, err := m.history.Append(CompletedEntry{
		TargetWebsite: sess.TargetWebsite,
		StartDate:     sess.StartDate,
		EndDate:       endDate,
		CompletedAt:   m.now().Format(DateTimeLayout),
		Checklist:     CloneChecklist(sess.Checklist),
		Notes:         CloneNotes(sess.Notes),
	})
	if err != nil {
		return nil, err
	}

	if err := m.save(m.fresh()); err != nil {
		return nil, err
	}
	return entry, nil
}

// Reset discards the current session unconditionally, with no history
// write, and reseeds it from a fresh template load.
func (m *SessionManager) Reset() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := m.fresh()
	if err := m.save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}
