package target

import "strconv"

// VariablePrefix is the Robot variable namespace of resolved targets.
const VariablePrefix = "RFCLI_TARGET_"

// Variable is one Robot Framework variable derived from a target.
type Variable struct {
	Name  string
	Value string
}

// String renders the NAME:VALUE form accepted by robot --variable.
func (v Variable) String() string {
	return v.Name + ":" + v.Value
}

// Prefix returns RFCLI_TARGET_<index>.
func Prefix(index int) string {
	return VariablePrefix + strconv.Itoa(index)
}

// Variables returns the short name variable followed by one variable per entry.
func (l *Loaded) Variables() []Variable {
	prefix := Prefix(l.Index)
	vars := make([]Variable, 0, len(l.Entries)+1)
	vars = append(vars, Variable{Name: prefix, Value: l.Name})
	for _, e := range l.Entries {
		vars = append(vars, Variable{Name: prefix + "." + e.Key, Value: e.Text})
	}
	return vars
}

// Variables concatenates the variables of all loaded targets in order.
func Variables(loaded []*Loaded) []Variable {
	var vars []Variable
	for _, l := range loaded {
		vars = append(vars, l.Variables()...)
	}
	return vars
}
