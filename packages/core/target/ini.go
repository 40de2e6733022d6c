package target

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// Section is the INI section holding target variables.
const Section = "target"

// iniOptions keep option names and values as written: case-sensitive keys,
// no inline comment stripping, quotes preserved, indented continuation lines.
var iniOptions = ini.LoadOptions{
	IgnoreContinuation:         true,
	IgnoreInlineComment:        true,
	PreserveSurroundedQuote:    true,
	AllowPythonMultilineValues: true,
	KeyValueDelimiters:         "=:",
}

// INIExtractor reads the [target] section of an INI file. Keys of an
// explicit [DEFAULT] section are inherited and come first.
type INIExtractor struct{}

func (INIExtractor) Extract(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FormatError{Path: path, Format: FormatINI, Err: fmt.Errorf("cannot open: %w", err)}
	}

	layout, err := scanINI(data)
	if err != nil {
		return nil, &FormatError{Path: path, Format: FormatINI, Err: err}
	}

	cfg, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return nil, &FormatError{Path: path, Format: FormatINI, Err: err}
	}

	options, ok := layout[Section]
	if !ok {
		return nil, &FormatError{Path: path, Format: FormatINI, Err: ErrMissingSection}
	}
	sec, err := cfg.GetSection(Section)
	if err != nil {
		return nil, &FormatError{Path: path, Format: FormatINI, Err: ErrMissingSection}
	}

	list := newEntryList()
	if defaults, ok := layout[ini.DefaultSection]; ok {
		addINIOptions(list, defaults, cfg.Section(ini.DefaultSection))
	}
	addINIOptions(list, options, sec)
	return list.list(), nil
}

// addINIOptions adds options in file order. Multi-line values come from the
// parsed section; names and values the parser rewrites are taken as written.
func addINIOptions(list *entryList, options []iniOption, sec *ini.Section) {
	for _, o := range options {
		value := o.value
		if !rewrittenByParser(o.value) && sec.HasKey(o.key) {
			value = sec.Key(o.key).Value()
		}
		list.add(Entry{Key: o.key, Value: value, Text: value})
	}
}

// rewrittenByParser reports values ini.v1 unquotes on its own.
func rewrittenByParser(value string) bool {
	return strings.HasPrefix(value, "`") || strings.HasPrefix(value, `"""`)
}

type iniOption struct {
	key   string
	value string // first line, trimmed
}

// scanINI checks the line structure of an INI file and returns the options
// of each section in order. Keys outside a section, repeated sections and
// repeated keys within a section are errors. Lines indented deeper than the
// option above them continue its value.
func scanINI(data []byte) (map[string][]iniOption, error) {
	sections := make(map[string][]iniOption)
	keys := make(map[string]map[string]bool)

	var (
		section   string
		inOption  bool
		optIndent int
		lineNo    int
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if inOption && indent > optIndent {
			continue
		}
		inOption = false

		if strings.HasPrefix(trimmed, "[") {
			if end := strings.LastIndex(trimmed, "]"); end > 1 {
				section = trimmed[1:end]
				if _, dup := keys[section]; dup {
					return nil, fmt.Errorf("line %d: %w [%s]", lineNo, ErrDuplicateSection, section)
				}
				keys[section] = make(map[string]bool)
				sections[section] = []iniOption{}
				continue
			}
		}

		if section == "" {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingSectionHeader)
		}

		i := strings.IndexAny(trimmed, "=:")
		if i < 0 {
			return nil, fmt.Errorf("line %d: expected key=value, found %q", lineNo, trimmed)
		}
		key := strings.TrimSpace(trimmed[:i])
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}
		if keys[section][key] {
			return nil, fmt.Errorf("line %d: %w %q in [%s]", lineNo, ErrDuplicateKey, key, section)
		}
		keys[section][key] = true
		sections[section] = append(sections[section], iniOption{key: key, value: strings.TrimSpace(trimmed[i+1:])})

		inOption = true
		optIndent = indent
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}
