// Package congruent is a small toolkit for building tabulated pseudo-random
// sequences with the classic linear congruential schemes.
//
// 🚀 What is inside?
//
//	• lcg/     — validation, constant derivation, the shared recurrence
//	             engine and the CSV exporter (pure functions)
//	• session/ — caller-owned form state: current result, error list,
//	             LRU of recent results, monkit instrumentation
//	• cmd/lcgtable — command-line front end printing a table or CSV
//
// ✨ Why?
//
//   - Teaching-friendly – every step of X_{i+1} = (a·X_i + c) MOD(m) is a row
//   - Honest validation – all violated rules are reported together
//   - Deterministic – same inputs, same table, on every platform
//
// Quick example:
//
//	seq, err := lcg.Run(lcg.Linear, lcg.RawInputs{Seed: "5", K: "1", C: "7", P: "3", D: "2"})
//	// a=5, g=2, m=4 → rows (1→0), (0→3), (3→2), (2→1)
//
// Not a cryptographic or statistically certified generator.
//
//	go get github.com/katalvlaran/congruent/lcg
package congruent
