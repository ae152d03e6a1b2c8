// SPDX-License-Identifier: MIT

// Package axiomic is a small, deterministic number-theory engine that also
// projects integers onto a fixed table of eleven "axioms".
//
// 🚀 What is axiomic?
//
//	A pure-Go library (plus a CLI and a calculator pad) that brings together:
//		• Primality & enumeration: IsPrime, PrimesUpTo, NextPrime, NthPrime
//		• Prime analytics: Factorize, PrimeGaps, TwinPrimes, GoldbachPair
//		• Axiom projection: every integer maps to one of 11 (label, glyph) pairs
//		• Semantic arithmetic: + − × ÷ ^ mod AND OR NOT with axiom + primality
//		• Symbolic calculus: derivative / integral of a typed expression
//
// ✨ Why axiomic?
//
//   - Every operation is a pure function over bounded inputs.
//   - Every failure is a sentinel error (see errors.go); no prose, no panics.
//   - Every unbounded search is capped by an explicit, configurable bound.
//
// Under the hood:
//
//	axiom/    : immutable 11-entry table, Project, ComposeTrace
//	primes/   : primality, enumeration, factorization, gaps, twins, Goldbach
//	semantic/ : arithmetic/bitwise operators wrapped with the projector
//	calculus/ : expression parser, derivative, integral, evaluation
//	render/   : plain-text, JSON export and bar charts of engine values
//	config/   : YAML configuration of bounds and logging
//	internal/ : pad-line session (zap) and the bubbletea pad
//	cmd/axiomcalc: cobra CLI over the session
//
// Quick example:
//
//	r, _ := semantic.Apply(semantic.Add, 5, 6)
//	fmt.Println(r.Value, r.Axiom.Label, r.IsPrime) // 11 Void – potential true
//
//	go get github.com/katalvlaran/axiomic
package axiomic
