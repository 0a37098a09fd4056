// result.go - successful-parse output.
// SPDX-License-Identifier: GPL-3.0-or-later

package capparser

import "github.com/tidycli/cap/pkg/store"

// Result is what [Config.Parse] returns on success: one store for flags,
// keyed by each flag's canonical [FlagDescriptor.Name], and one for
// positionals, keyed by each [PositionalDescriptor.Name].
type Result struct {
	Flags       *store.Store
	Positionals *store.Store
}
