//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTable() map[Kind]CallableTool {
	return map[Kind]CallableTool{
		KindPlayerStats: newMockTool(NamePlayerStats),
		KindTeamSquad:   newMockTool(NameTeamSquad),
		KindMatchupData: newMockTool(NameMatchupData),
		KindVenueStats:  newMockTool(NameVenueStats),
	}
}

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry(fullTable())
	require.NoError(t, err)
	assert.NotNil(t, registry)
}

func TestNewRegistryRejectsPartialTable(t *testing.T) {
	table := fullTable()
	delete(table, KindVenueStats)

	_, err := NewRegistry(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), NameVenueStats)
}

func TestNewRegistryRejectsNilEntry(t *testing.T) {
	table := fullTable()
	table[KindMatchupData] = nil

	_, err := NewRegistry(table)
	require.Error(t, err)
}

func TestRegistryLookup(t *testing.T) {
	registry, err := NewRegistry(fullTable())
	require.NoError(t, err)

	impl, ok := registry.Lookup(NamePlayerStats)
	require.True(t, ok)
	assert.Equal(t, NamePlayerStats, impl.Declaration().Name)

	_, ok = registry.Lookup("get_weather_forecast")
	assert.False(t, ok, "names outside the closed set must not resolve")
}

func TestRegistryDeclarationsOrder(t *testing.T) {
	registry, err := NewRegistry(fullTable())
	require.NoError(t, err)

	decls := registry.Declarations()
	require.Len(t, decls, len(Kinds()))
	for i, kind := range Kinds() {
		assert.Equal(t, kind.String(), decls[i].Name)
	}
}

func TestRegistryTools(t *testing.T) {
	registry, err := NewRegistry(fullTable())
	require.NoError(t, err)

	tools := registry.Tools()
	require.Len(t, tools, len(Kinds()))
	for _, kind := range Kinds() {
		assert.Contains(t, tools, kind.String())
	}
}
