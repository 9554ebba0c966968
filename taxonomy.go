package ontograph

// TaxonomyEntry is a labeled binary relation (subject, predicate, object)
// tagged with whether it was derived by reasoning (inferred) or asserted
// directly. Equality for set-membership purposes ignores Inferred: two
// entries with the same (subject, predicate, object) are the same entry.
type TaxonomyEntry struct {
	Subject   Fingerprint
	Predicate Fingerprint
	Object    Fingerprint
	Inferred  bool
}

type tripleKey struct {
	S, P, O Fingerprint
}

func (e TaxonomyEntry) key() tripleKey {
	return tripleKey{e.Subject, e.Predicate, e.Object}
}

// Taxonomy is a set of TaxonomyEntry values indexed by subject and by
// object for O(1) lookup in either direction. Insertion is idempotent:
// adding an entry that already exists (ignoring Inferred) is a no-op,
// except that a non-inferred insert upgrades a previously inferred-only
// entry in place (§4.1).
type Taxonomy struct {
	entries   map[tripleKey]TaxonomyEntry
	bySubject map[Fingerprint]map[tripleKey]bool
	byObject  map[Fingerprint]map[tripleKey]bool
}

// NewTaxonomy creates an empty taxonomy.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		entries:   map[tripleKey]TaxonomyEntry{},
		bySubject: map[Fingerprint]map[tripleKey]bool{},
		byObject:  map[Fingerprint]map[tripleKey]bool{},
	}
}

// Add inserts the entry, returning true if it was newly added or upgraded
// from inferred to asserted, false if it was already present in the same
// or a stronger (non-inferred) form.
func (t *Taxonomy) Add(e TaxonomyEntry) bool {
	k := e.key()
	existing, found := t.entries[k]
	if found {
		if existing.Inferred && !e.Inferred {
			existing.Inferred = false
			t.entries[k] = existing
			return true
		}
		return false
	}
	t.entries[k] = e
	if t.bySubject[e.Subject] == nil {
		t.bySubject[e.Subject] = map[tripleKey]bool{}
	}
	t.bySubject[e.Subject][k] = true
	if t.byObject[e.Object] == nil {
		t.byObject[e.Object] = map[tripleKey]bool{}
	}
	t.byObject[e.Object][k] = true
	return true
}

// Contains reports whether an entry with the given (subject, predicate,
// object) exists, regardless of its Inferred flag.
func (t *Taxonomy) Contains(subject, predicate, object Fingerprint) bool {
	_, ok := t.entries[tripleKey{subject, predicate, object}]
	return ok
}

// Len returns the number of entries in the taxonomy.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Entries returns every entry in the taxonomy. Order is not guaranteed.
func (t *Taxonomy) Entries() []TaxonomyEntry {
	out := make([]TaxonomyEntry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	return out
}

// BySubject returns every entry whose subject matches.
func (t *Taxonomy) BySubject(subject Fingerprint) []TaxonomyEntry {
	keys := t.bySubject[subject]
	out := make([]TaxonomyEntry, 0, len(keys))
	for k := range keys {
		out = append(out, t.entries[k])
	}
	return out
}

// ByObject returns every entry whose object matches.
func (t *Taxonomy) ByObject(object Fingerprint) []TaxonomyEntry {
	keys := t.byObject[object]
	out := make([]TaxonomyEntry, 0, len(keys))
	for k := range keys {
		out = append(out, t.entries[k])
	}
	return out
}

// SelectBySubject returns a fresh taxonomy containing only entries whose
// subject matches.
func (t *Taxonomy) SelectBySubject(subject Fingerprint) *Taxonomy {
	out := NewTaxonomy()
	for _, e := range t.BySubject(subject) {
		out.Add(e)
	}
	return out
}

// SelectByObject returns a fresh taxonomy containing only entries whose
// object matches.
func (t *Taxonomy) SelectByObject(object Fingerprint) *Taxonomy {
	out := NewTaxonomy()
	for _, e := range t.ByObject(object) {
		out.Add(e)
	}
	return out
}

// SelectByPredicate returns a fresh taxonomy containing only entries whose
// predicate matches.
func (t *Taxonomy) SelectByPredicate(predicate Fingerprint) *Taxonomy {
	out := NewTaxonomy()
	for _, e := range t.entries {
		if e.Predicate == predicate {
			out.Add(e)
		}
	}
	return out
}

// SelectByPredicates returns a fresh taxonomy containing entries whose
// predicate is any of the given fingerprints. Used to build the
// "compatible predicates" union of §4.7.
func (t *Taxonomy) SelectByPredicates(predicates map[Fingerprint]bool) *Taxonomy {
	out := NewTaxonomy()
	for _, e := range t.entries {
		if predicates[e.Predicate] {
			out.Add(e)
		}
	}
	return out
}

// Union returns a fresh taxonomy containing every entry from both
// taxonomies. When the same (subject, predicate, object) triple appears in
// both with differing Inferred flags, the non-inferred entry dominates
// (§4.1).
func (t *Taxonomy) Union(other *Taxonomy) *Taxonomy {
	out := NewTaxonomy()
	for _, e := range t.entries {
		out.Add(e)
	}
	if other != nil {
		for _, e := range other.entries {
			out.Add(e)
		}
	}
	return out
}

// Intersection returns a fresh taxonomy containing entries present
// (ignoring Inferred) in both taxonomies.
func (t *Taxonomy) Intersection(other *Taxonomy) *Taxonomy {
	out := NewTaxonomy()
	if other == nil {
		return out
	}
	for k, e := range t.entries {
		if _, ok := other.entries[k]; ok {
			out.Add(e)
		}
	}
	return out
}

// Difference returns a fresh taxonomy containing entries present in t but
// not in other (ignoring Inferred).
func (t *Taxonomy) Difference(other *Taxonomy) *Taxonomy {
	out := NewTaxonomy()
	for k, e := range t.entries {
		if other != nil {
			if _, ok := other.entries[k]; ok {
				continue
			}
		}
		out.Add(e)
	}
	return out
}

// Subjects returns the distinct set of subject fingerprints in the
// taxonomy.
func (t *Taxonomy) Subjects() []Fingerprint {
	out := make([]Fingerprint, 0, len(t.bySubject))
	for s := range t.bySubject {
		out = append(out, s)
	}
	return out
}

// fingerprintSet is a small convenience set type used throughout the
// reasoning helpers for visit contexts and membership accumulation.
type fingerprintSet map[Fingerprint]bool

func newFingerprintSet() fingerprintSet {
	return fingerprintSet{}
}

func (s fingerprintSet) add(fp Fingerprint) {
	s[fp] = true
}

func (s fingerprintSet) has(fp Fingerprint) bool {
	return s[fp]
}

func (s fingerprintSet) addAll(other fingerprintSet) {
	for fp := range other {
		s[fp] = true
	}
}

func (s fingerprintSet) slice() []Fingerprint {
	out := make([]Fingerprint, 0, len(s))
	for fp := range s {
		out = append(out, fp)
	}
	return out
}
