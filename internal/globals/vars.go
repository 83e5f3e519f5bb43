package globals

import (
	"fmt"
	"sort"
	"sync"
)

// Variables reachable from anywhere in the process. Adding one is a single
// Define line.
var (
	ManualConnectorReconnectIntervalMS          = Define("MANUAL_CONNECTOR_RECONNECT_INTERVAL_MS", uint64(1000))
	OSPFUpdateMyGlobalForeignNetworkIntervalSec = Define("OSPF_UPDATE_MY_GLOBAL_FOREIGN_NETWORK_INTERVAL_SEC", uint64(10))
	MachineUID                                  = Define("MACHINE_UID", None[string]())
)

type entry interface {
	Name() string
	load() (any, error)
}

var (
	registryMu sync.Mutex
	registry   = map[string]entry{}
)

// Define creates a registered Var with a fixed default. It panics if name
// is already defined.
func Define[T any](name string, def T) *Var[T] {
	return register(New(name, func() T { return def }))
}

// DefineFunc is Define with a computed default. init runs at most once.
func DefineFunc[T any](name string, init func() T) *Var[T] {
	return register(New(name, init))
}

func register[T any](v *Var[T]) *Var[T] {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[v.name]; exists {
		panic(fmt.Sprintf("global variable '%s' already defined", v.name))
	}
	registry[v.name] = v
	return v
}

// Names returns the names of all defined variables, sorted.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot reads every defined variable. Each read takes only that
// variable's lock, so the result is not an atomic view across variables.
func Snapshot() (map[string]any, error) {
	registryMu.Lock()
	entries := make([]entry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}
	registryMu.Unlock()

	values := make(map[string]any, len(entries))
	for _, e := range entries {
		value, err := e.load()
		if err != nil {
			return values, fmt.Errorf("snapshot %s: %w", e.Name(), err)
		}
		values[e.Name()] = value
	}
	return values, nil
}
