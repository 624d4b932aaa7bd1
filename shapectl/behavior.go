package shapectl

import (
	"fmt"
	"strings"
)

// ExportBehavior is a set of flags that controls in which execution contexts
// a controller writes to its export targets.
type ExportBehavior uint8

const (
	// ExportEditor enables exporting while running in an editor.
	ExportEditor ExportBehavior = 1 << iota
	// ExportRuntime enables exporting at runtime.
	ExportRuntime

	// ExportDisabled never exports.
	ExportDisabled ExportBehavior = 0
	exportAll                     = ExportEditor | ExportRuntime
)

var exportBehaviorNames = []struct {
	flag ExportBehavior
	name string
}{
	{ExportEditor, "editor"},
	{ExportRuntime, "runtime"},
}

// Has reports whether all flags in f are set.
func (b ExportBehavior) Has(f ExportBehavior) bool {
	return b&f == f
}

// Set sets or clears the flags in f.
func (b *ExportBehavior) Set(f ExportBehavior, on bool) {
	if on {
		*b |= f
	} else {
		*b &^= f
	}
}

func (b ExportBehavior) String() string {
	if b == ExportDisabled {
		return "disabled"
	}
	var names []string
	for _, n := range exportBehaviorNames {
		if b.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if rest := b &^ exportAll; rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(names, "|")
}

func (b ExportBehavior) MarshalText() ([]byte, error) {
	if b&^exportAll != 0 {
		return nil, fmt.Errorf("invalid export behavior 0x%x", uint8(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText parses a list of flag names separated by '|', such as
// "editor|runtime". The names "disabled" and "" select no flags.
func (b *ExportBehavior) UnmarshalText(text []byte) error {
	var out ExportBehavior
	for _, f := range strings.Split(string(text), "|") {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case "", "disabled":
			continue
		}
		found := false
		for _, n := range exportBehaviorNames {
			if n.name == f {
				out |= n.flag
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown export behavior %q", f)
		}
	}
	*b = out
	return nil
}

// ExecContext is the context a controller runs in.
type ExecContext int

const (
	Editor ExecContext = iota
	Runtime
)

func (c ExecContext) String() string {
	switch c {
	case Editor:
		return "editor"
	case Runtime:
		return "runtime"
	default:
		return fmt.Sprintf("ExecContext(%d)", int(c))
	}
}

// flag returns the export behavior flag that enables exporting in c.
func (c ExecContext) flag() ExportBehavior {
	switch c {
	case Editor:
		return ExportEditor
	case Runtime:
		return ExportRuntime
	default:
		return 0
	}
}

func (c *ExecContext) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "editor":
		*c = Editor
	case "runtime":
		*c = Runtime
	default:
		return fmt.Errorf("unknown execution context %q", string(text))
	}
	return nil
}
