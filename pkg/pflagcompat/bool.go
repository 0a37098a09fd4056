// bool.go - Boolean flag implementation
// SPDX-License-Identifier: GPL-3.0-or-later

package pflagcompat

import (
	"github.com/tidycli/cap/pkg/assert"
	"github.com/tidycli/cap/pkg/value"
)

// Bool adds a long-only boolean flag with a default value and returns a
// pointer to the flag value. Since the flag itself carries no value on the
// command line, presence always sets the pointer to true; there is no way
// to pass false explicitly.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.Bool].
func (fx *FlagSet) Bool(longName string, defvalue bool, usage string) *bool {
	return fx.BoolP(longName, 0, defvalue, usage)
}

// BoolVar adds a long-only boolean flag with a default value and arranges
// for parsing to modify the given pointer.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.BoolVar].
func (fx *FlagSet) BoolVar(valuep *bool, longName string, defvalue bool, usage string) {
	fx.BoolVarP(valuep, longName, 0, defvalue, usage)
}

// BoolP adds a flag with both long and short name and a default value and
// returns to the caller a pointer to the flag value.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.BoolP].
func (fx *FlagSet) BoolP(longName string, shortName byte, defvalue bool, usage string) *bool {
	v := new(bool)
	fx.BoolVarP(v, longName, shortName, defvalue, usage)
	return v
}

// BoolVarP adds a flag with both long and short name and a default value
// and arranges for parsing to modify the given pointer.
//
// This method is reminiscent of [*github.com/spf13/pflag.FlagSet.BoolVarP].
func (fx *FlagSet) BoolVarP(valuep *bool, longName string, shortName byte, defvalue bool, usage string) {
	assert.True(valuep != nil, "valuep cannot be nil")
	*valuep = defvalue
	name := "--" + longName
	assert.NotError1(fx.Parser.AddFlag(name, value.Presence, 0, 1, "", usage))
	fx.registerAlias(longName, shortName)
	fx.bindings = append(fx.bindings, binding{name: name, kind: value.Presence, boolp: valuep})
}
