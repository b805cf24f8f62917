// Package renderer turns arcana reports into markdown documents suitable for
// terminal display.
package renderer

import "strings"

// spreadLabel returns the spread name, or a generic fallback when a reading
// was recorded without one.
func spreadLabel(spread string) string {
	if spread == "" {
		return "Spread"
	}
	return spread
}

// joinCards renders a draw as its comma-separated card list.
func joinCards(cards []string) string {
	return strings.Join(cards, ", ")
}
