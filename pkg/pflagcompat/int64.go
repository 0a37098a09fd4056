// int64.go - int64 flag implementation
// SPDX-License-Identifier: GPL-3.0-or-later

package pflagcompat

import (
	"github.com/tidycli/cap/pkg/assert"
	"github.com/tidycli/cap/pkg/value"
)

// Int64 adds a long-only int64 flag with a default value and returns a
// pointer to the flag value.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Int64].
func (fx *FlagSet) Int64(longName string, defvalue int64, usage string) *int64 {
	return fx.Int64P(longName, 0, defvalue, usage)
}

// Int64Var adds a long-only int64 flag with a default value and arranges
// for parsing to modify the given pointer.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Int64Var].
func (fx *FlagSet) Int64Var(valuep *int64, longName string, defvalue int64, usage string) {
	fx.Int64VarP(valuep, longName, 0, defvalue, usage)
}

// Int64P adds a flag with both long and short name and a default value
// and returns to the caller a pointer to the flag value.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Int64P].
func (fx *FlagSet) Int64P(longName string, shortName byte, defvalue int64, usage string) *int64 {
	v := new(int64)
	fx.Int64VarP(v, longName, shortName, defvalue, usage)
	return v
}

// Int64VarP adds a flag with both long and short name and a default value
// and arranges for parsing to modify the given pointer.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Int64VarP].
func (fx *FlagSet) Int64VarP(valuep *int64, longName string, shortName byte, defvalue int64, usage string) {
	assert.True(valuep != nil, "valuep cannot be nil")
	*valuep = defvalue
	name := "--" + longName
	assert.NotError1(fx.Parser.AddFlag(name, value.Int, 0, 1, "VALUE", usage))
	fx.registerAlias(longName, shortName)
	fx.bindings = append(fx.bindings, binding{name: name, kind: value.Int, int64p: valuep})
}
