package models

// Record is one data row of a custom entity: an id plus the user-defined
// field values keyed by field name.
type Record map[string]interface{}

// ID returns the record id, or "" if unset.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
