//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package tool

import "fmt"

// Registry is the fixed dispatch table from tool kinds to their
// implementations. A registry always covers the full closed set, so a
// successful name lookup is also proof that the name is a known tool.
type Registry struct {
	table map[Kind]CallableTool
}

// NewRegistry builds a registry from the given table. Every Kind must be
// bound exactly once; a partial or padded table is a programming error
// surfaced here instead of at dispatch time.
func NewRegistry(table map[Kind]CallableTool) (*Registry, error) {
	for _, kind := range Kinds() {
		impl, ok := table[kind]
		if !ok || impl == nil {
			return nil, fmt.Errorf("tool registry: missing implementation for %s", kind)
		}
	}
	if len(table) != len(Kinds()) {
		return nil, fmt.Errorf("tool registry: %d entries, want %d", len(table), len(Kinds()))
	}

	cloned := make(map[Kind]CallableTool, len(table))
	for kind, impl := range table {
		cloned[kind] = impl
	}
	return &Registry{table: cloned}, nil
}

// Get returns the implementation bound to the kind.
func (r *Registry) Get(kind Kind) (CallableTool, bool) {
	impl, ok := r.table[kind]
	return impl, ok
}

// Lookup resolves a model-supplied tool name against the closed set.
func (r *Registry) Lookup(name string) (CallableTool, bool) {
	kind, ok := KindForName(name)
	if !ok {
		return nil, false
	}
	return r.Get(kind)
}

// Declarations returns the declaration of every tool in kind order, ready
// to hand to the model.
func (r *Registry) Declarations() []*Declaration {
	decls := make([]*Declaration, 0, len(r.table))
	for _, kind := range Kinds() {
		decls = append(decls, r.table[kind].Declaration())
	}
	return decls
}

// Tools returns the registry as a name-keyed map for model requests.
func (r *Registry) Tools() map[string]Tool {
	tools := make(map[string]Tool, len(r.table))
	for _, impl := range r.table {
		tools[impl.Declaration().Name] = impl
	}
	return tools
}
