package dspace

// RecordSet is the immutable collection of repository records for one run.
type RecordSet struct {
	records []Record
}

// NewRecordSet wraps records in export order. The slice is copied so later
// changes by the caller do not leak into the run.
func NewRecordSet(records []Record) *RecordSet {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &RecordSet{records: copied}
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// All returns a copy of the records in export order.
func (s *RecordSet) All() []Record {
	if s == nil {
		return nil
	}
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Index builds an id lookup over the set. Duplicate ids are kept so the
// join can report them. Records without an id are left out.
func (s *RecordSet) Index() Index {
	idx := make(Index, s.Len())
	if s == nil {
		return idx
	}
	for i := range s.records {
		rec := &s.records[i]
		id := rec.ID.String()
		if id == "" {
			continue
		}
		idx[id] = append(idx[id], rec)
	}
	return idx
}

// Index maps a repository id to every record carrying it.
type Index map[string][]*Record

// Lookup returns the records stored under id.
func (idx Index) Lookup(id string) []*Record {
	return idx[id]
}
