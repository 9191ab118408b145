// SPDX-License-Identifier: MIT

// Package ctmdata - bundled catalog registry and loader.
//
// This file embeds the compressed catalogs and exposes the registry
// (Catalogs, Find) plus the one-call loader (Load). The CSV wire format
// lives in csv.go.
package ctmdata

import (
	"compress/gzip"
	"embed"
	"errors"

	"github.com/sragli/BDM/ctm"
)

//go:embed assets/*.csv.gz
var assets embed.FS

// Bundled catalog names, stable across releases. The scheme follows the
// source enumerations: b<symbols>-d<max shape>.
const (
	// B2D12 prices binary strings up to length 12.
	B2D12 = "b2-d12"
	// B4D6 prices 4-symbol strings up to length 6.
	B4D6 = "b4-d6"
	// B5D5 prices 5-symbol strings up to length 5.
	B5D5 = "b5-d5"
	// B6D4 prices 6-symbol strings up to length 4.
	B6D4 = "b6-d4"
	// B9D4 prices 9-symbol strings up to length 4.
	B9D4 = "b9-d4"
	// B2D4x4 prices binary matrices up to 4x4.
	B2D4x4 = "b2-d4x4"
)

var (
	// ErrUnknownCatalog indicates a name outside the bundled registry.
	ErrUnknownCatalog = errors.New("ctmdata: unknown catalog name")
	// ErrBadRow indicates a malformed catalog CSV row.
	ErrBadRow = errors.New("ctmdata: malformed catalog row")
)

// Info describes one bundled catalog.
type Info struct {
	Name    string // registry name, e.g. "b2-d12"
	Dims    int    // block dimensionality
	Symbols int    // alphabet size
}

// registry lists the bundled catalogs in loadable order.
var registry = []Info{
	{Name: B2D12, Dims: 1, Symbols: 2},
	{Name: B4D6, Dims: 1, Symbols: 4},
	{Name: B5D5, Dims: 1, Symbols: 5},
	{Name: B6D4, Dims: 1, Symbols: 6},
	{Name: B9D4, Dims: 1, Symbols: 9},
	{Name: B2D4x4, Dims: 2, Symbols: 2},
}

// Catalogs returns descriptors of every bundled catalog, in registry order.
//
// Complexity: O(1) per catalog.
func Catalogs() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)

	return out
}

// Find returns the bundled catalog serving a (dimensionality, alphabet)
// pair, or false when no bundled catalog covers it. Each pair has at most
// one bundled catalog.
//
// Complexity: O(1) per catalog.
func Find(dims, symbols int) (Info, bool) {
	for _, info := range registry {
		if info.Dims == dims && info.Symbols == symbols {
			return info, true
		}
	}

	return Info{}, false
}

// Load decompresses and parses the named bundled catalog into a ctm.Table.
// Returns ErrUnknownCatalog for names outside Catalogs.
//
// Complexity: O(N×V) time, O(N) memory (N = catalog entries).
func Load(name string) (*ctm.Table, error) {
	var info *Info
	for i := range registry {
		if registry[i].Name == name {
			info = &registry[i]

			break
		}
	}
	if info == nil {
		return nil, ErrUnknownCatalog
	}

	f, err := assets.Open("assets/ctm-" + name + ".csv.gz")
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	return ctm.Build(info.Dims, info.Symbols, NewCSVReader(gz))
}
