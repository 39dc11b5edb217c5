package base

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
)

// FlagSet wraps flag.FlagSet with help output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Parse errors are returned rather than printed.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help renders the flags for a command's help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	buf.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&buf, "\n  -%s", fl.Name)
		if fl.DefValue != "" {
			fmt.Fprintf(&buf, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&buf, "\n      %s\n", fl.Usage)
	})
	return strings.TrimRight(buf.String(), "\n")
}

// SettingsFlag collects repeated -set key=value flags into a settings map.
//
// Keys are converted to lowerCamelCase so snake_case input matches the API
// (open_ai_temp becomes openAiTemp); keys that already contain an upper case
// letter, such as LLMProvider, are kept as written. Values that parse as
// JSON (numbers, booleans, null, arrays, objects) are sent as such;
// anything else is sent as a string.
type SettingsFlag map[string]any

func (s SettingsFlag) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

func (s SettingsFlag) Set(v string) error {
	key, raw, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	s[SettingKey(strings.TrimSpace(key))] = settingValue(raw)
	return nil
}

// SettingKey normalizes a settings key for the API.
func SettingKey(key string) string {
	if strings.ToLower(key) != key {
		return key
	}
	return strcase.ToLowerCamel(key)
}

func settingValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

// AddFlag registers s as the repeatable -set flag.
func (s SettingsFlag) AddFlag(f *FlagSet) {
	f.Var(s, "set", "A key=value setting to send. Can be repeated.")
}
