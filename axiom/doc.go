// Package axiom projects integers onto a fixed table of eleven axioms.
//
// Every integer n maps to exactly one Entry via the mathematical modulo
// ((n % 11) + 11) % 11, so negative values wrap instead of producing a
// negative index:
//
//	axiom.Project(11)  // {0 "Void – potential" "⚪"}
//	axiom.Project(-1)  // {10 "Rebirth – next scale" "⬜"}
//
// The table is an unexported array built at compile time; callers only see
// copies (Project, Lookup, Table), so it can be read concurrently without
// synchronization.
//
// ComposeTrace projects an ordered path of integers independently, keeping
// input order. Joining a trace into display text belongs to package render.
package axiom
