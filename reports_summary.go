package arcana

// Summary provides an at-a-glance overview of the reading history kept in a
// ledger.
type Summary struct {
	Total    int  // number of recorded readings
	First    Date // date of the earliest reading, zero when empty
	Last     Date // date of the latest reading, zero when empty
	TopCards []CardCount
}

// NewSummary computes a summary of the ledger, ranking at most topN cards.
func NewSummary(ledger *Ledger, topN int) *Summary {
	return &Summary{
		Total:    ledger.Len(),
		First:    ledger.OldestEntryDate(),
		Last:     ledger.NewestEntryDate(),
		TopCards: ledger.TopCards(topN),
	}
}
