package arcana

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sort"
)

// LoadError reports that a ledger store exists but could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load ledger %q: %v", e.Path, e.Err)
}
func (e *LoadError) Unwrap() error { return e.Err }

// PersistError reports that the ledger store could not be written.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("cannot save ledger %q: %v", e.Path, e.Err)
}
func (e *PersistError) Unwrap() error { return e.Err }

// Ledger represents the collection of readings bound to one store file.
//
// In a Ledger entries are always in chronological order; readings sharing a
// date keep the relative order in which they were added. The Ledger owns its
// entries exclusively: the only way to mutate the collection is Add, and every
// mutation rewrites the whole store.
//
// A Ledger is not safe for concurrent use, and the design assumes a single
// process accesses a given store path at a time.
type Ledger struct {
	path    string
	entries []Entry
}

// LoadLedger builds a Ledger from the store at path. A missing store is a
// valid empty ledger; a store that exists but cannot be read or parsed
// returns a *LoadError.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Ledger{path: path}, nil
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	entries, err := DecodeEntries(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	l := &Ledger{path: path, entries: entries}
	// A hand-edited store may be out of order.
	l.stableSort()
	return l, nil
}

// Path returns the store path this ledger is bound to.
func (l *Ledger) Path() string { return l.path }

// Len returns the number of readings in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Save serializes the full current sequence, in current order, to the store,
// replacing any prior content. It returns a *PersistError on any I/O failure.
//
// The store is written to a temporary file in the same directory and then
// renamed over the old one, so a crash mid-write cannot leave a half-written
// store behind.
func (l *Ledger) Save() error {
	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp-*")
	if err != nil {
		return &PersistError{Path: l.path, Err: err}
	}
	if err := EncodeEntries(tmp, l.entries); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistError{Path: l.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistError{Path: l.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return &PersistError{Path: l.path, Err: err}
	}
	return nil
}

// Add appends readings to the ledger, restores the chronological order, and
// rewrites the store. A save failure propagates to the caller; the in-memory
// append is not rolled back, so memory and store may diverge until the next
// successful Save.
func (l *Ledger) Add(entries ...Entry) error {
	l.entries = append(l.entries, entries...)
	l.stableSort()
	return l.Save()
}

// stableSort sorts the ledger by entry date. The sort is stable, meaning
// readings on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date.Before(l.entries[j].Date)
	})
}

// Entries returns an independent copy of the entries in ledger order.
// Mutating the returned slice does not affect the ledger.
func (l *Ledger) Entries() []Entry {
	return slices.Clone(l.entries)
}

// InRange returns an iterator over the entries whose date falls within r,
// in ledger order. The sequence is finite and restarts on re-invocation.
func (l *Ledger) InRange(r Range) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, entry := range l.entries {
			if !r.Contains(entry.Date) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// CardFrequency tallies how many times each distinct card name appears across
// all readings, counting duplicates within a single draw. Names are matched
// exactly: no case folding, no trimming. The returned map has no defined
// iteration order; use TopCards for a ranking.
func (l *Ledger) CardFrequency() map[string]int {
	counts := make(map[string]int)
	for _, entry := range l.entries {
		for _, card := range entry.Cards {
			counts[card]++
		}
	}
	return counts
}

// CardCount pairs a card name with the number of times it was drawn.
type CardCount struct {
	Card  string
	Count int
}

// TopCards returns up to n cards ranked by descending draw count. Cards with
// equal counts keep the order in which they were first encountered while
// counting through the ledger.
func (l *Ledger) TopCards(n int) []CardCount {
	counts := make(map[string]int)
	var order []string
	for _, entry := range l.entries {
		for _, card := range entry.Cards {
			if _, seen := counts[card]; !seen {
				order = append(order, card)
			}
			counts[card]++
		}
	}

	ranked := make([]CardCount, 0, len(order))
	for _, card := range order {
		ranked = append(ranked, CardCount{Card: card, Count: counts[card]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// OldestEntryDate returns the date of the earliest reading in the ledger,
// or the zero date if the ledger is empty.
func (l *Ledger) OldestEntryDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[0].Date
}

// NewestEntryDate returns the date of the latest reading in the ledger,
// or the zero date if the ledger is empty.
func (l *Ledger) NewestEntryDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[len(l.entries)-1].Date
}
