package invoice

import "strconv"

// Outcome describes what a submit did to the list.
type Outcome int

const (
	// Created means a new record was appended.
	Created Outcome = iota
	// Updated means the record under edit was replaced in place.
	Updated
	// Stale means the record under edit was no longer in the list; the
	// list is unchanged.
	Stale
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Stale:
		return "stale"
	}
	return "unknown"
}

const maxIDAttempts = 8

// Submit reconciles form into list. With a non-empty editing id the
// matching record is replaced at its current position and keeps its id;
// otherwise a record with a fresh id from ids is appended. The returned
// selector is always cleared and the returned form is always empty. list
// itself is never modified.
func Submit(form FormState, editing string, list List, ids IDGenerator) (List, string, FormState, Outcome) {
	if editing != "" {
		i := list.Index(editing)
		if i < 0 {
			return list, "", EmptyForm(), Stale
		}
		return list.withReplaced(i, Record{ID: editing, FormState: form}), "", EmptyForm(), Updated
	}
	rec := Record{ID: uniqueID(list, ids), FormState: form}
	return list.withAppended(rec), "", EmptyForm(), Created
}

// uniqueID draws from ids until it gets an id not present in list. A
// generator that keeps colliding falls back to a suffixed id.
func uniqueID(list List, ids IDGenerator) string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = ids.Next()
		if id != "" && !list.Has(id) {
			return id
		}
	}
	if id == "" {
		id = "record"
	}
	for n := len(list) + 1; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if !list.Has(candidate) {
			return candidate
		}
	}
}

// SelectForEdit loads rec into a form verbatim, without re-deriving, and
// returns rec's id as the editing selector.
func SelectForEdit(rec Record) (FormState, string) {
	return rec.FormState, rec.ID
}

// Session is the complete editor state: the working form, the records
// submitted so far, and the id of the record being edited ("" when the
// form holds a new entry).
type Session struct {
	Form    FormState
	Records List
	Editing string
}

// NewSession returns the startup state.
func NewSession() Session {
	return Session{Form: EmptyForm()}
}

// IsEditing reports whether the form holds an existing record.
func (s Session) IsEditing() bool {
	return s.Editing != ""
}

// UpdateField applies a keystroke-level change to the working form.
func (s Session) UpdateField(f Field, raw string) Session {
	s.Form = UpdateField(s.Form, f, raw)
	return s
}

// Submit reconciles the working form into the record list.
func (s Session) Submit(ids IDGenerator) (Session, Outcome) {
	var outcome Outcome
	s.Records, s.Editing, s.Form, outcome = Submit(s.Form, s.Editing, s.Records, ids)
	return s, outcome
}

// SelectForEdit loads the record with the given id into the form. It
// reports false and leaves s unchanged when no such record exists.
func (s Session) SelectForEdit(id string) (Session, bool) {
	rec, ok := s.Records.Get(id)
	if !ok {
		return s, false
	}
	s.Form, s.Editing = SelectForEdit(rec)
	return s, true
}

// CancelEdit drops the selector and clears the form. Records are kept.
func (s Session) CancelEdit() Session {
	s.Form = EmptyForm()
	s.Editing = ""
	return s
}

// LastID returns the id of the most recently appended record, or "".
func (s Session) LastID() string {
	if len(s.Records) == 0 {
		return ""
	}
	return s.Records[len(s.Records)-1].ID
}
