package arcana

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file handles the ledger store format.
//
// The store is a single JSON array, indented for readability, where each
// element is one reading. It should remain human readable, single file, and
// easy to inspect or sync.

// record mirrors one reading in the store file. Date and Question are
// pointers so a missing field can be told apart from an empty one: a record
// without them is malformed, the other fields just default to empty.
type record struct {
	Date     *string  `json:"date"`
	Question *string  `json:"question"`
	Cards    []string `json:"cards"`
	Spread   string   `json:"spread"`
	Notes    string   `json:"notes"`
}

// entry converts a decoded record into an Entry, enforcing the required
// fields.
func (rec record) entry() (Entry, error) {
	if rec.Date == nil {
		return Entry{}, fmt.Errorf("missing required field %q", "date")
	}
	if rec.Question == nil {
		return Entry{}, fmt.Errorf("missing required field %q", "question")
	}
	return NewEntry(*rec.Date, *rec.Question, rec.Cards, rec.Spread, rec.Notes)
}

// newRecord converts an Entry back into its store representation.
func newRecord(entry Entry) record {
	day := entry.Date.String()
	question := entry.Question
	cards := entry.Cards
	if cards == nil {
		// A drawless reading is stored as [], not null.
		cards = []string{}
	}
	return record{
		Date:     &day,
		Question: &question,
		Cards:    cards,
		Spread:   entry.Spread,
		Notes:    entry.Notes,
	}
}

// DecodeEntries decodes a full store from 'r' and returns its entries in file
// order. Any record missing a date or question, or carrying an invalid date,
// fails the whole decode: the store is not trustworthy enough to skip over
// corruption silently.
func DecodeEntries(r io.Reader) ([]Entry, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("cannot parse ledger store: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		entry, err := rec.entry()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// EncodeEntries writes entries to 'w' in the store format, in the given order.
func EncodeEntries(w io.Writer, entries []Entry) error {
	records := make([]record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, newRecord(entry))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal ledger store: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write ledger store: %w", err)
	}
	return nil
}
