package interpreter

import (
	"fmt"
	"sort"

	"regexnfa/regexlib"
)

// Environment holds named, compiled patterns

type Environment struct {
	patterns map[string]*regexlib.Regex
}

func NewEnvironment() *Environment {
	return &Environment{patterns: make(map[string]*regexlib.Regex)}
}

func (e *Environment) Get(name string) (*regexlib.Regex, bool) {
	re, ok := e.patterns[name]
	return re, ok
}

func (e *Environment) Set(name string, re *regexlib.Regex) {
	e.patterns[name] = re
}

func (e *Environment) String() string {
	names := make([]string, 0, len(e.patterns))
	for n := range e.patterns {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%s=%q", n, e.patterns[n])
	}
	return fmt.Sprint(out)
}
