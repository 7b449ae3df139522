// Package uc compiles an arbitrary bounded-fan-in/fan-out-2 boolean circuit
// into a Valiant-style Universal Circuit for private function evaluation.
//
// A universal circuit of a given size can be configured, via a short
// programming string, to compute any circuit of that size — the circuit
// topology itself reveals nothing about the function it has been programmed
// to compute. This module implements the compilation pipeline end to end:
//
//	gate/       — gate-list model, fan-out-2 normaliser, textual reader/writer
//	gamma2/     — Γ₂ supergraph construction from a normalised gate list
//	gamma1/     — Γ₁ graphs and the two-colouring split of a Γ₂ graph
//	hybrid/     — the 2-way/4-way split-cost oracle
//	splittree/  — the recursive subgraph tree the split produces
//	eug/        — the Edge-Universal Graph permutation-network primitive
//	embed/      — programming the permutation network over the split tree
//	ucemit/     — topological numbering and circuit/programming file emission
//	ucvalidate/ — structural validators for the compiled artifact
//	pipeline/   — the driver wiring every stage together behind one Config
//
// cmd/uc is the command-line front end.
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// specification and the grounding ledger tying each package back to its
// reference source.
package uc
