// Package arcana provides the types and functions for keeping a personal
// record of tarot readings. It is designed to be local-first and auditable:
// all readings live in a single human-readable file that can be inspected,
// versioned, or synced like any other document.
//
// The core functionalities include:
//   - Ledger Management: Recording readings (question, cards drawn, spread,
//     notes) in a chronological, append-only record.
//   - Queries: Filtering readings by inclusive date ranges and tallying how
//     often each card has appeared across all readings.
//   - Data Persistence: Encoding and decoding the ledger to and from an
//     indented JSON file, rewritten in full on every mutation.
//
// This package serves as the foundational logic for the `arc` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package arcana
