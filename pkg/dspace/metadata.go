package dspace

// MetadataEntry is a single namespaced key-value pair. Several entries may
// share a key; the export order is significant.
type MetadataEntry struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Language string `json:"language,omitempty"`
}

// Metadata is the ordered multi-map of an item's metadata entries.
type Metadata []MetadataEntry

// Values returns every value stored under key, in export order.
// It returns nil when the key is absent.
func (m Metadata) Values(key string) []string {
	var values []string
	for _, entry := range m {
		if entry.Key == key {
			values = append(values, entry.Value)
		}
	}
	return values
}

// First returns the first value stored under key.
func (m Metadata) First(key string) (string, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Has reports whether at least one entry uses key.
func (m Metadata) Has(key string) bool {
	_, ok := m.First(key)
	return ok
}

// Group collects the entries into a key to values map, keeping value order.
func (m Metadata) Group() map[string][]string {
	grouped := make(map[string][]string)
	for _, entry := range m {
		grouped[entry.Key] = append(grouped[entry.Key], entry.Value)
	}
	return grouped
}
