// Package bdm estimates the algorithmic (Kolmogorov) complexity of discrete
// datasets — binary strings, symbol sequences, adjacency matrices — with the
// Block Decomposition Method.
//
// 🚀 What is BDM?
//
//	Kolmogorov complexity is uncomputable, but for small blocks it can be
//	approximated numerically by the Coding Theorem Method: enumerate small
//	Turing machines, observe how often each block is produced, and convert
//	output frequency into complexity. BDM extends those block prices to
//	objects of any size:
//		• decompose the dataset into table-sized blocks (partition/),
//		• price every distinct block with a precomputed catalog (ctm/),
//		• sum the prices, charging repeated blocks only log2(multiplicity)
//		  extra — repeating a block is cheap, new structure is not.
//
//	The result, in bits, tracks algorithmic structure that entropy alone
//	cannot see: a periodic string and a random string with equal symbol
//	frequencies score very differently.
//
// ✨ Why this implementation?
//
//   - Deterministic – same table, options and dataset ⇒ bit-identical
//     results across runs and platforms
//   - Immutable engines – safe for concurrent use without locks
//   - Explicit boundary policies – Ignore, Recursive, Correlated and Pad,
//     because the boundary treatment is the accuracy/bias trade-off
//   - Bundled catalogs – five 1D alphabets and binary 4x4 matrices embedded
//     via ctm/ctmdata; custom catalogs stream in through ctm.EntryReader
//
// Everything is organized under focused subpackages:
//
//	dataset/     — n-dimensional symbol arrays + deterministic generators
//	partition/   — block decomposition under the four boundary policies
//	ctm/         — complexity catalogs: build, query, coverage, statistics
//	ctm/ctmdata/ — embedded precomputed catalogs + the CSV stream adapter
//	perturb/     — element-wise perturbation analysis on top of the engine
//
// Quick example:
//
//	tbl, _ := ctmdata.Load(ctmdata.B2D12)
//	eng, _ := bdm.New(tbl)
//	d, _ := dataset.FromCells([]int{12}, cells)
//	bits, _ := eng.Compute(d)
//
// Dive into README.md for full examples and the catalog inventory.
//
//	go get github.com/sragli/BDM
package bdm
