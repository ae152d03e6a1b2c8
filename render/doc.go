// Package render turns engine results into the text the calculator shows.
//
// Text
//
//	Semantic  "5 + 6 = 11\n→ Axiom 0: ⚪ Void – potential (prime)"
//	Trace     "⚪ 0 → Void – potential →→→ 🔴 1 → Monad – distinction"
//	Factors   "28 = 2^2 × 7" or "17 is already prime"
//	Goldbach  "28 = 5 + 23"
//	Error     one line of prose chosen by axiomic.KindOf
//
// Charts are drawn with lipgloss; Export writes a JSON envelope
// {id, kind, generated_at, data} for machine consumers.
package render
