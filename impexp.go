package arcana

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to merge into a store.

// ExportEntries exports readings to 'w' in the import/export format.
//
// The format is a JSONL stream, one reading per line, using the same field
// names as the store: date, question, cards, spread, notes. Unlike the store
// itself, a JSONL stream can be concatenated or diffed line by line, which
// makes it the right shape for moving readings between stores.
func ExportEntries(w io.Writer, entries []Entry) error {
	for _, entry := range entries {
		data, err := json.Marshal(newRecord(entry))
		if err != nil {
			return fmt.Errorf("cannot marshal reading on %s: %w", entry.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write export format: %w", err)
		}
	}
	return nil
}

// ImportReadings extracts readings from an arbitrary JSON document read
// from 'r'.
//
// The 'path' argument is a jsonpath expression selecting the list of reading
// records inside the document; "$" imports a document that is itself a list.
// Each selected record uses the store field names, with date and question
// required and the rest defaulting to empty. Any malformed record fails the
// whole import.
func ImportReadings(r io.Reader, path string) ([]Entry, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse import document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating path %q: %w", path, err)
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("path %q does not select a list of readings", path)
	}

	entries := make([]Entry, 0, len(list))
	for i, item := range list {
		// Round-trip through json to reuse the store record decoding.
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: cannot re-encode: %w", i, err)
		}
		var rec record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("record %d: cannot parse: %w", i, err)
		}
		entry, err := rec.entry()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
