package form

import (
	"errors"
	"fmt"
	"sync"
)

// Kind identifies a form type.
type Kind string

const (
	// KindContact is the generic contact/inquiry form.
	KindContact Kind = "contact"
	// KindFelling is the tree felling transit permission form.
	KindFelling Kind = "felling"
)

// FieldID identifies a single declared field of a form.
type FieldID string

// ErrUnknownField reports a write to a field that is not declared for the
// record's form type.
var ErrUnknownField = errors.New("unknown form field")

// Field declares one form field: its identifier, the camelCase key the
// frontend uses for it, whether it is required for completeness, and whether
// it is a boolean flag (e.g. terms acceptance) rather than a text answer.
type Field struct {
	ID       FieldID
	External string
	Required bool
	Flag     bool
}

// Record is a mutable keyed record of answers for one form type. It is
// created empty at session start, mutated one field at a time, and discarded
// with the session. Safe for concurrent access.
type Record struct {
	mu      sync.RWMutex
	kind    Kind
	fields  []Field
	index   map[FieldID]int
	byExt   map[string]FieldID
	values  map[FieldID]string
	flags   map[FieldID]bool
	uploads map[string]bool
}

func newRecord(kind Kind, fields []Field) *Record {
	r := &Record{
		kind:    kind,
		fields:  fields,
		index:   make(map[FieldID]int, len(fields)),
		byExt:   make(map[string]FieldID, len(fields)),
		values:  make(map[FieldID]string),
		flags:   make(map[FieldID]bool),
		uploads: make(map[string]bool),
	}
	for i, f := range fields {
		r.index[f.ID] = i
		r.byExt[f.External] = f.ID
	}
	return r
}

// Kind returns the form type of this record.
func (r *Record) Kind() Kind { return r.kind }

// Fields returns a copy of the field declarations in declaration order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Lookup returns the declaration for a field ID.
func (r *Record) Lookup(id FieldID) (Field, bool) {
	i, ok := r.index[id]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// ByExternal resolves a frontend-facing key to the internal field ID.
func (r *Record) ByExternal(key string) (FieldID, bool) {
	id, ok := r.byExt[key]
	return id, ok
}

// ExternalKey returns the frontend-facing key of a field ID.
func (r *Record) ExternalKey(id FieldID) (string, bool) {
	i, ok := r.index[id]
	if !ok {
		return "", false
	}
	return r.fields[i].External, true
}

// SetField stores a text value if the field is declared for this form type.
// Writes to flag fields accept "true"/"false" spellings so the frontend data
// channel can drive them too.
func (r *Record) SetField(id FieldID, value string) error {
	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: %s (%s form)", ErrUnknownField, id, r.kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fields[i].Flag {
		r.flags[id] = value == "true" || value == "yes"
		return nil
	}
	r.values[id] = value
	return nil
}

// SetFlag stores a boolean flag value.
func (r *Record) SetFlag(id FieldID, v bool) error {
	i, ok := r.index[id]
	if !ok || !r.fields[i].Flag {
		return fmt.Errorf("%w: %s (%s form)", ErrUnknownField, id, r.kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flags[id] = v
	return nil
}

// Get returns the stored text value of a field.
func (r *Record) Get(id FieldID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[id]
	return v, ok
}

// GetFlag returns the stored flag value of a boolean field.
func (r *Record) GetFlag(id FieldID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.flags[id]
}

// Filled reports whether the field holds a usable value: non-empty text for
// answer fields, true for flag fields.
func (r *Record) Filled(id FieldID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fields[i].Flag {
		return r.flags[id]
	}
	return r.values[id] != ""
}

// MissingFields returns required field IDs with empty values, followed by
// required flags that are false. Order is declaration order; the output is
// stable and deterministic for a given record state.
func (r *Record) MissingFields() []FieldID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var missing []FieldID
	for _, f := range r.fields {
		if f.Flag || !f.Required {
			continue
		}
		if r.values[f.ID] == "" {
			missing = append(missing, f.ID)
		}
	}
	for _, f := range r.fields {
		if !f.Flag || !f.Required {
			continue
		}
		if !r.flags[f.ID] {
			missing = append(missing, f.ID)
		}
	}
	return missing
}

// IsComplete reports whether every required field holds a non-empty value and
// every required flag is true.
func (r *Record) IsComplete() bool { return len(r.MissingFields()) == 0 }

// SetUploaded records the presence of a file upload slot. Only the uploaded
// status is tracked; file contents never reach this process.
func (r *Record) SetUploaded(slot string, uploaded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads[slot] = uploaded
}

// Uploaded reports whether the named upload slot has been filled.
func (r *Record) Uploaded(slot string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.uploads[slot]
}

// Serialize returns a flat key/value snapshot of all declared attributes,
// keyed by internal field ID. Flag fields serialize as booleans. Upload slots
// are included under "files_uploaded" when present.
func (r *Record) Serialize() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.fields)+1)
	for _, f := range r.fields {
		if f.Flag {
			out[string(f.ID)] = r.flags[f.ID]
			continue
		}
		out[string(f.ID)] = r.values[f.ID]
	}
	if len(r.uploads) > 0 {
		uploads := make(map[string]bool, len(r.uploads))
		for k, v := range r.uploads {
			uploads[k] = v
		}
		out["files_uploaded"] = uploads
	}
	return out
}

// Equal reports whether two records of the same kind hold identical field and
// flag values. Upload slots are ignored.
func (r *Record) Equal(other *Record) bool {
	if other == nil || r.kind != other.kind {
		return false
	}
	for _, f := range r.fields {
		if f.Flag {
			if r.GetFlag(f.ID) != other.GetFlag(f.ID) {
				return false
			}
			continue
		}
		a, _ := r.Get(f.ID)
		b, _ := other.Get(f.ID)
		if a != b {
			return false
		}
	}
	return true
}
