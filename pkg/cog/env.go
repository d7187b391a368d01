package cog

import (
	"fmt"
	"sort"
	"strings"
)

const maxPrintLen = 120

// ValueTable maps names to Cog Values.
type ValueTable map[string]Value

// Environment is the heap of variables visible to a Context. Values are
// cloned on the way in and on the way out, so no two bindings alias.
type Environment struct {
	vt ValueTable
}

func NewEnvironment() *Environment {
	return &Environment{vt: ValueTable{}}
}

// Get returns a copy of the value bound to name.
func (env *Environment) Get(name string) (Value, bool) {
	val, ok := env.vt[name]
	if !ok {
		return NoneValue{}, false
	}
	return val.Clone(), true
}

// Set binds name to a copy of val, replacing any earlier binding.
func (env *Environment) Set(name string, val Value) {
	env.vt[name] = val.Clone()
}

// Len reports the number of bindings.
func (env *Environment) Len() int {
	return len(env.vt)
}

func (env *Environment) String() string {
	names := make([]string, 0, len(env.vt))
	for k := range env.vt {
		names = append(names, k)
	}
	sort.Strings(names)

	entries := make([]string, 0, len(names))
	for _, k := range names {
		vstr := env.vt[k].String()
		if len(vstr) > maxPrintLen {
			vstr = vstr[:maxPrintLen] + ".."
		}
		entries = append(entries, fmt.Sprintf("%s -> %s", k, vstr))
	}

	return fmt.Sprintf("{\n\t%s\n}", strings.Join(entries, "\n\t"))
}
