package target

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTargetsDir is where bare target names are looked up.
const DefaultTargetsDir = "targets"

// Format identifies the syntax of a target file.
type Format int

const (
	FormatINI Format = iota + 1
	FormatYAML
)

// lookupOrder is the extension inference order for bare names. INI wins.
var lookupOrder = []Format{FormatINI, FormatYAML}

func (f Format) String() string {
	switch f {
	case FormatINI:
		return "ini"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the file extension including the leading dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, bool) {
	for _, f := range lookupOrder {
		if strings.HasSuffix(path, f.Extension()) {
			return f, true
		}
	}
	return 0, false
}

// Entry is one flattened target variable.
type Entry struct {
	// Key is the dotted variable name relative to the target.
	Key string
	// Value is the decoded value: always a string for INI targets, the YAML
	// decoded Go value (string, int, float64, bool, nil, []any, ...) otherwise.
	Value any
	// Text is the string form forwarded to robot.
	Text string
}

// Extractor reads the ordered entries of one target file.
type Extractor interface {
	Extract(path string) ([]Entry, error)
}

var extractors = map[Format]Extractor{
	FormatINI:  INIExtractor{},
	FormatYAML: YAMLExtractor{},
}

// ExtractorFor returns the extractor for format f.
func ExtractorFor(f Format) (Extractor, error) {
	e, ok := extractors[f]
	if !ok {
		return nil, fmt.Errorf("no extractor for format %s", f)
	}
	return e, nil
}

// Target is a resolved target specification. It is immutable once resolved.
type Target struct {
	Spec   string // specification as given by the user
	Path   string // absolute path of the target file
	Format Format
	Name   string // short name: file base name without extension
}

// Entries parses the target file.
func (t *Target) Entries() ([]Entry, error) {
	e, err := ExtractorFor(t.Format)
	if err != nil {
		return nil, err
	}
	return e.Extract(t.Path)
}

// Loaded is a resolved and parsed target with its 1-based position.
type Loaded struct {
	Index int
	*Target
	Entries []Entry
}

// Resolver turns target specifications into targets.
type Resolver struct {
	baseDir    string
	targetsDir string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseDir sets the directory relative specifications are resolved
// against. Defaults to the working directory at resolution time.
func WithBaseDir(dir string) Option {
	return func(r *Resolver) {
		r.baseDir = dir
	}
}

// WithTargetsDir sets the directory bare names are looked up in.
func WithTargetsDir(dir string) Option {
	return func(r *Resolver) {
		if dir != "" {
			r.targetsDir = dir
		}
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		targetsDir: DefaultTargetsDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve locates the file named by spec without parsing it.
func (r *Resolver) Resolve(spec string) (*Target, error) {
	base, err := r.base()
	if err != nil {
		return nil, err
	}

	var candidates []string
	if f, ok := FormatOf(spec); ok {
		candidates = append(candidates, spec)
		if exists(absolute(base, spec)) {
			return newTarget(spec, absolute(base, spec), f), nil
		}
		return nil, &NotFoundError{Spec: spec, Candidates: candidates}
	}

	for _, f := range lookupOrder {
		candidate := r.expand(spec, f)
		candidates = append(candidates, candidate)
		if exists(absolute(base, candidate)) {
			return newTarget(spec, absolute(base, candidate), f), nil
		}
	}
	return nil, &NotFoundError{Spec: spec, Candidates: candidates}
}

// Load resolves spec and parses the target file.
func (r *Resolver) Load(spec string) (*Target, []Entry, error) {
	t, err := r.Resolve(spec)
	if err != nil {
		return nil, nil, err
	}
	entries, err := t.Entries()
	if err != nil {
		return nil, nil, err
	}
	return t, entries, nil
}

// LoadAll loads every spec in order, numbering them from 1. The first
// failure aborts the whole batch.
func (r *Resolver) LoadAll(specs []string) ([]*Loaded, error) {
	loaded := make([]*Loaded, 0, len(specs))
	for i, spec := range specs {
		t, entries, err := r.Load(spec)
		if err != nil {
			return nil, fmt.Errorf("target %d (%s): %w", i+1, spec, err)
		}
		loaded = append(loaded, &Loaded{Index: i + 1, Target: t, Entries: entries})
	}
	return loaded, nil
}

// expand builds the candidate path for a spec without extension.
func (r *Resolver) expand(spec string, f Format) string {
	name := spec + f.Extension()
	if hasSeparator(spec) {
		return name
	}
	return filepath.Join(r.targetsDir, name)
}

func (r *Resolver) base() (string, error) {
	if r.baseDir != "" {
		abs, err := filepath.Abs(r.baseDir)
		if err != nil {
			return "", fmt.Errorf("resolve base directory: %w", err)
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}

func newTarget(spec, path string, f Format) *Target {
	return &Target{
		Spec:   spec,
		Path:   path,
		Format: f,
		Name:   strings.TrimSuffix(filepath.Base(path), f.Extension()),
	}
}

func hasSeparator(spec string) bool {
	return strings.ContainsRune(spec, '/') || strings.ContainsRune(spec, filepath.Separator)
}

func absolute(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
