// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   EngineConfig
		want EngineConfig
	}{
		{"negative variations", EngineConfig{Variations: -1}, EngineConfig{Variations: 3, VariationMin: 2, VariationMax: 3}},
		{"zero variations kept", EngineConfig{Variations: 0}, EngineConfig{Variations: 0, VariationMin: 2, VariationMax: 3}},
		{"explicit values kept", EngineConfig{Variations: 5, VariationMin: 1, VariationMax: 4}, EngineConfig{Variations: 5, VariationMin: 1, VariationMax: 4}},
		{"max raised to min", EngineConfig{VariationMin: 4, VariationMax: 2}, EngineConfig{VariationMin: 4, VariationMax: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}
}
