// double.go - float64 flag implementation
// SPDX-License-Identifier: GPL-3.0-or-later

package pflagcompat

import (
	"github.com/tidycli/cap/pkg/assert"
	"github.com/tidycli/cap/pkg/value"
)

// Float64 adds a long-only float64 flag with a default value and returns
// a pointer to the flag value.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Float64].
func (fx *FlagSet) Float64(longName string, defvalue float64, usage string) *float64 {
	return fx.Float64P(longName, 0, defvalue, usage)
}

// Float64Var adds a long-only float64 flag with a default value and
// arranges for parsing to modify the given pointer.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Float64Var].
func (fx *FlagSet) Float64Var(valuep *float64, longName string, defvalue float64, usage string) {
	fx.Float64VarP(valuep, longName, 0, defvalue, usage)
}

// Float64P adds a flag with both long and short name and a default value
// and returns to the caller a pointer to the flag value.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Float64P].
func (fx *FlagSet) Float64P(longName string, shortName byte, defvalue float64, usage string) *float64 {
	v := new(float64)
	fx.Float64VarP(v, longName, shortName, defvalue, usage)
	return v
}

// Float64VarP adds a flag with both long and short name and a default
// value and arranges for parsing to modify the given pointer.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Float64VarP].
func (fx *FlagSet) Float64VarP(valuep *float64, longName string, shortName byte, defvalue float64, usage string) {
	assert.True(valuep != nil, "valuep cannot be nil")
	*valuep = defvalue
	name := "--" + longName
	assert.NotError1(fx.Parser.AddFlag(name, value.Double, 0, 1, "VALUE", usage))
	fx.registerAlias(longName, shortName)
	fx.bindings = append(fx.bindings, binding{name: name, kind: value.Double, doublep: valuep})
}
