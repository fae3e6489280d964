package stages

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"

	"github.com/npillmayer/strand/pipe"
)

// Factory produces a fresh transform instance with private state.
type Factory func() pipe.Transform

var registry = map[string]Factory{
	"uppercaser": Uppercaser,
	"flipper":    Flipper,
	"rotator":    Rotator,
	"expander":   Expander,
	"logger":     Logger,
	"typewriter": Typewriter(defaultTypeDelay),
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown stage %q", name)
	}
	return f, nil
}

// New is a convenience for Lookup followed by the factory call.
func New(name string) (pipe.Transform, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("creating fresh %q instance", name)
	return f(), nil
}

// Names lists the registered stage names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
