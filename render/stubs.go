// Package render holds the placeholder render entry points of the
// dashboard. Each one announces itself with a single line and does
// nothing else. The default application run never calls them.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrUnknownStub is returned by Lookup for names with no stub.
var ErrUnknownStub = errors.New("unknown stub")

// Stub writes its announcement line to w.
type Stub func(w io.Writer) error

func announce(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "Executing %s\n", name)
	return err
}

// Main is the shadowed entry point of app.py.
func Main(w io.Writer) error { return announce(w, "main") }

// Calculator stands in for components/calculator.py.
func Calculator(w io.Writer) error { return announce(w, "render_calculator") }

// Education stands in for components/education.py.
func Education(w io.Writer) error { return announce(w, "render_education") }

// Simulator stands in for components/simulator.py.
func Simulator(w io.Writer) error { return announce(w, "render_simulator") }

var stubs = map[string]Stub{
	"main":              Main,
	"render_calculator": Calculator,
	"render_education":  Education,
	"render_simulator":  Simulator,
}

// Lookup returns the stub registered under name.
func Lookup(name string) (Stub, error) {
	s, ok := stubs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStub, name)
	}
	return s, nil
}

// Names lists registered stub names in sorted order.
func Names() []string {
	names := make([]string, 0, len(stubs))
	for name := range stubs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
