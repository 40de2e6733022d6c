package env

import (
	"os"
	"strings"
)

// PythonPathVar is the variable holding the Python import path.
const PythonPathVar = "PYTHONPATH"

// Var is a single environment variable.
type Var struct {
	Name  string
	Value string
}

func (v Var) String() string {
	return v.Name + "=" + v.Value
}

// Set returns vars with name set to value. An existing variable keeps its
// position.
func Set(vars []Var, name, value string) []Var {
	for i := range vars {
		if vars[i].Name == name {
			vars[i].Value = value
			return vars
		}
	}
	return append(vars, Var{Name: name, Value: value})
}

// Merge combines variable lists; later sources take precedence.
func Merge(sources ...[]Var) []Var {
	var result []Var
	for _, src := range sources {
		for _, v := range src {
			result = Set(result, v.Name, v.Value)
		}
	}
	return result
}

// Build returns base (KEY=value entries, as from os.Environ) with vars
// applied. PYTHONPATH entries are prepended to an inherited PYTHONPATH rather
// than replacing it.
func Build(base []string, vars []Var) []string {
	result := make([]string, 0, len(base)+len(vars))
	index := make(map[string]int, len(base))
	for _, e := range base {
		name, _, _ := strings.Cut(e, "=")
		if i, ok := index[name]; ok {
			result[i] = e
			continue
		}
		index[name] = len(result)
		result = append(result, e)
	}

	for _, v := range vars {
		value := v.Value
		if i, ok := index[v.Name]; ok {
			if v.Name == PythonPathVar {
				_, inherited, _ := strings.Cut(result[i], "=")
				value = JoinPath(append(SplitPath(value), SplitPath(inherited)...))
			}
			result[i] = v.Name + "=" + value
			continue
		}
		index[v.Name] = len(result)
		result = append(result, v.Name+"="+value)
	}
	return result
}

// LoadSystemEnv returns the variables of the current process whose name
// starts with prefix, with the prefix removed. An empty prefix returns all.
func LoadSystemEnv(prefix string) map[string]string {
	result := make(map[string]string)
	for _, e := range os.Environ() {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		if prefix == "" {
			result[key] = value
		} else if len(key) > len(prefix) && strings.HasPrefix(key, prefix) {
			result[key[len(prefix):]] = value
		}
	}
	return result
}
