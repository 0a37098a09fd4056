// config.go - parser configuration: the registration-time half of the
// component pair, as opposed to engine.go's parse-time half.
// SPDX-License-Identifier: GPL-3.0-or-later

package capparser

import "github.com/tidycli/cap/pkg/value"

type nameKind int

const (
	nameKindFlag nameKind = iota
	nameKindHelp
	nameKindSeparator
)

type nameEntry struct {
	kind      nameKind
	flagIndex int // meaningful only when kind == nameKindFlag
}

// Config is the registration-time configuration of a command-line grammar:
// its flags, its positionals, its prefix character set, and its optional
// help flag and argument separator. Build one with [NewConfig] or
// [DefaultConfig], register flags and positionals on it, then call
// [Config.Parse] as many times as needed against different argument
// vectors.
//
// A Config is not safe for concurrent registration; once registration is
// complete, concurrent calls to [Config.Parse] are safe, since Parse never
// mutates the Config.
type Config struct {
	Flags       []FlagDescriptor
	Positionals []PositionalDescriptor

	HelpFlag         *FlagDescriptor
	SeparatorName    string
	SeparatorAliases []string
	SeparatorDesc    string

	ProgramName string
	Description string
	Epilogue    string
	CustomHelp  string
	HelpEnabled bool
	UsageEnabled bool

	prefixes        map[byte]struct{}
	names           map[string]nameEntry
	positionalNames map[string]struct{}
}

// NewConfig returns a bare [Config]: only the default prefix character '-'
// is registered, with no help flag and no separator.
func NewConfig() *Config {
	return &Config{
		prefixes:        map[byte]struct{}{'-': {}},
		names:           make(map[string]nameEntry),
		positionalNames: make(map[string]struct{}),
		HelpEnabled:     true,
		UsageEnabled:    true,
	}
}

// DefaultConfig returns a [Config] preregistered the way most command-line
// tools want to start: prefix '-', help flag "-h", and separator "--". Every
// registration performed here uses literal, known-good arguments, so the
// errors it could return are asserted away rather than propagated.
func DefaultConfig() *Config {
	cfg := NewConfig()
	mustConfigure(cfg.SetHelpFlag("-h", "show this help message and exit"))
	mustConfigure(cfg.SetFlagSeparator("--", "treat every remaining argument as positional"))
	return cfg
}

func mustConfigure(err error) {
	if err != nil {
		panic("capparser: DefaultConfig: " + err.Error())
	}
}

// SetFlagPrefix replaces the set of characters that may begin a flag name.
// It fails with [ErrPrefixChangeAfterFlags] once any flag, help flag, or
// separator flag is currently registered, and with [ErrInvalidPrefix] if
// chars is empty.
func (cfg *Config) SetFlagPrefix(chars []byte) error {
	if len(cfg.Flags) > 0 || cfg.HelpFlag != nil || cfg.SeparatorName != "" {
		return ErrPrefixChangeAfterFlags{}
	}
	if len(chars) == 0 {
		return ErrInvalidPrefix{Name: ""}
	}
	next := make(map[byte]struct{}, len(chars))
	for _, c := range chars {
		next[c] = struct{}{}
	}
	cfg.prefixes = next
	return nil
}

func (cfg *Config) hasPrefix(name string) bool {
	if name == "" {
		return false
	}
	_, ok := cfg.prefixes[name[0]]
	return ok
}

func (cfg *Config) validateNewName(name string) error {
	if !cfg.hasPrefix(name) {
		return ErrInvalidPrefix{Name: name}
	}
	if _, exists := cfg.names[name]; exists {
		return ErrNameAlreadyExists{Name: name}
	}
	return nil
}

// AddFlag registers a new flag and returns a pointer into [Config.Flags]
// that the caller may use with [Config.AddFlagAlias]. minCount and maxCount
// bound how many times the flag may appear; maxCount of -1 means unbounded.
func (cfg *Config) AddFlag(name string, typ value.Kind, minCount, maxCount int, metaName, description string) (*FlagDescriptor, error) {
	if err := cfg.validateNewName(name); err != nil {
		return nil, err
	}
	if minCount < 0 || (maxCount >= 0 && maxCount < minCount) {
		return nil, ErrInvalidCount{Min: minCount, Max: maxCount}
	}
	cfg.Flags = append(cfg.Flags, FlagDescriptor{
		Name:        name,
		Type:        typ,
		MinCount:    minCount,
		MaxCount:    maxCount,
		MetaName:    metaName,
		Description: description,
	})
	idx := len(cfg.Flags) - 1
	cfg.names[name] = nameEntry{kind: nameKindFlag, flagIndex: idx}
	return &cfg.Flags[idx], nil
}

// AddFlagAlias registers alias as an alternate spelling of name, which must
// already be registered as a flag, the help flag, or the separator flag.
func (cfg *Config) AddFlagAlias(name, alias string) error {
	entry, ok := cfg.names[name]
	if !ok {
		return ErrAliasForUnknownFlag{Name: name}
	}
	if err := cfg.validateNewName(alias); err != nil {
		return err
	}
	cfg.names[alias] = entry
	switch entry.kind {
	case nameKindFlag:
		cfg.Flags[entry.flagIndex].Aliases = append(cfg.Flags[entry.flagIndex].Aliases, alias)
	case nameKindHelp:
		cfg.HelpFlag.Aliases = append(cfg.HelpFlag.Aliases, alias)
	case nameKindSeparator:
		cfg.SeparatorAliases = append(cfg.SeparatorAliases, alias)
	}
	return nil
}

// SetHelpFlag replaces the configured help flag. Passing an empty name
// disables help recognition entirely. Replacing an existing help flag
// first frees its previously registered name and aliases, so calling this
// twice is not an error.
func (cfg *Config) SetHelpFlag(name, description string) error {
	cfg.clearRegisteredHelp()
	if name == "" {
		return nil
	}
	if !cfg.hasPrefix(name) {
		return ErrInvalidPrefix{Name: name}
	}
	if _, exists := cfg.names[name]; exists {
		return ErrNameAlreadyExists{Name: name}
	}
	cfg.HelpFlag = &FlagDescriptor{Name: name, Type: value.Presence, Description: description}
	cfg.names[name] = nameEntry{kind: nameKindHelp}
	return nil
}

func (cfg *Config) clearRegisteredHelp() {
	if cfg.HelpFlag == nil {
		return
	}
	delete(cfg.names, cfg.HelpFlag.Name)
	for _, a := range cfg.HelpFlag.Aliases {
		delete(cfg.names, a)
	}
	cfg.HelpFlag = nil
}

// SetFlagSeparator replaces the configured argument separator (e.g. "--"),
// the token after which every remaining argument is treated as positional
// regardless of its spelling. Passing an empty name disables the
// separator.
func (cfg *Config) SetFlagSeparator(name, description string) error {
	cfg.clearRegisteredSeparator()
	if name == "" {
		return nil
	}
	if !cfg.hasPrefix(name) {
		return ErrInvalidPrefix{Name: name}
	}
	if _, exists := cfg.names[name]; exists {
		return ErrNameAlreadyExists{Name: name}
	}
	cfg.SeparatorName = name
	cfg.SeparatorDesc = description
	cfg.names[name] = nameEntry{kind: nameKindSeparator}
	return nil
}

func (cfg *Config) clearRegisteredSeparator() {
	if cfg.SeparatorName == "" {
		return
	}
	delete(cfg.names, cfg.SeparatorName)
	for _, a := range cfg.SeparatorAliases {
		delete(cfg.names, a)
	}
	cfg.SeparatorName = ""
	cfg.SeparatorAliases = nil
	cfg.SeparatorDesc = ""
}

// AddPositional registers the next positional slot. Positionals are matched
// strictly in registration order; at most the last one registered may set
// variadic.
func (cfg *Config) AddPositional(name string, typ value.Kind, required, variadic bool, metaName, description string) error {
	if typ == value.Presence {
		return ErrPresenceForPositional{Name: name}
	}
	if name == "" || cfg.hasPrefix(name) {
		return ErrInvalidPositionalName{Name: name}
	}
	if _, exists := cfg.positionalNames[name]; exists {
		return ErrNameAlreadyExists{Name: name}
	}
	if n := len(cfg.Positionals); n > 0 {
		last := cfg.Positionals[n-1]
		if last.Variadic {
			return ErrAnythingAfterVariadic{Name: name}
		}
		if !last.Required && required {
			return ErrRequiredAfterOptional{Name: name}
		}
	}
	cfg.Positionals = append(cfg.Positionals, PositionalDescriptor{
		Name:        name,
		Type:        typ,
		Required:    required,
		Variadic:    variadic,
		MetaName:    metaName,
		Description: description,
	})
	cfg.positionalNames[name] = struct{}{}
	return nil
}

// SetProgramName sets the name shown in generated usage/help text.
func (cfg *Config) SetProgramName(name string) { cfg.ProgramName = name }

// SetDescription sets the one-paragraph description shown above the flag
// and positional listing in generated help text.
func (cfg *Config) SetDescription(text string) { cfg.Description = text }

// SetEpilogue sets the text shown below the flag and positional listing in
// generated help text.
func (cfg *Config) SetEpilogue(text string) { cfg.Epilogue = text }

// SetCustomHelp overrides the entire generated help text with text verbatim.
// Passing an empty string reverts to the generated rendering.
func (cfg *Config) SetCustomHelp(text string) { cfg.CustomHelp = text }

// EnableHelp toggles whether [Config.Parse] recognizes the configured help
// flag at all, independently of whether one is registered.
func (cfg *Config) EnableHelp(enabled bool) { cfg.HelpEnabled = enabled }

// EnableUsage toggles whether a short usage synopsis is rendered as part of
// help text.
func (cfg *Config) EnableUsage(enabled bool) { cfg.UsageEnabled = enabled }
