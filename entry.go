package arcana

import "strings"

// Entry represents a single recorded tarot reading.
//
// Entries have no identity: two readings with identical content are
// indistinguishable and both are kept. Cards are listed in draw order and are
// not deduplicated.
type Entry struct {
	Date     Date     `json:"date"`
	Question string   `json:"question"`
	Cards    []string `json:"cards"`
	Spread   string   `json:"spread"`
	Notes    string   `json:"notes"`
}

// NewEntry builds an Entry from the textual form of its date. It is the only
// constructor that validates the date, so an Entry with an unparseable date is
// not constructible through it.
func NewEntry(day, question string, cards []string, spread, notes string) (Entry, error) {
	d, err := ParseDate(day)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Date:     d,
		Question: question,
		Cards:    cards,
		Spread:   spread,
		Notes:    notes,
	}, nil
}

// ParseCards splits a comma-separated list of card names, trimming whitespace
// around each name and dropping empty tokens.
func ParseCards(raw string) []string {
	var cards []string
	for _, card := range strings.Split(raw, ",") {
		card = strings.TrimSpace(card)
		if card != "" {
			cards = append(cards, card)
		}
	}
	return cards
}
