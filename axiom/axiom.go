// SPDX-License-Identifier: MIT

package axiom

// Size is the number of entries in the axiom table.
const Size = 11

// Entry is one row of the axiom table.
type Entry struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Glyph string `json:"glyph"`
}

// table is the single source of truth; index i holds Entry{Index: i}.
var table = [Size]Entry{
	{0, "Void – potential", "⚪"},
	{1, "Monad – distinction", "🔴"},
	{2, "Duality – relation", "🔵"},
	{3, "Triad – transformation", "🟡"},
	{4, "Pattern – recurrence", "🟠"},
	{5, "Growth – identity", "🟢"},
	{6, "Recursion – memory", "🟣"},
	{7, "Self-awareness", "🟤"},
	{8, "Interconnection", "🟥"},
	{9, "Unity – integration", "🟦"},
	{10, "Rebirth – next scale", "⬜"},
}

// Mod returns the mathematical modulo of n by m, always in [0, m).
// It differs from Go's % (truncating remainder) for negative n.
// m must be positive; m <= 0 is a programmer error and panics.
func Mod(n, m int64) int64 {
	if m <= 0 {
		panic("axiom: Mod with non-positive modulus")
	}

	return ((n % m) + m) % m
}

// Project returns the table entry for n. Total: never fails.
func Project(n int64) Entry {
	return table[Mod(n, Size)]
}

// Lookup returns the entry at index i, or false when i is outside [0, Size).
func Lookup(i int) (Entry, bool) {
	if i < 0 || i >= Size {
		return Entry{}, false
	}

	return table[i], true
}

// Table returns a copy of all entries in index order.
func Table() []Entry {
	out := make([]Entry, Size)
	copy(out, table[:])

	return out
}
