package systems

import (
	"testing"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
)

func TestLayerOf(t *testing.T) {
	tests := []struct {
		kind components.ParticleKind
		want Layer
	}{
		{components.ParticleAmbientHeart, LayerBackground},
		{components.ParticleAmbientSparkle, LayerBackground},
		{components.ParticleModalHeart, LayerModal},
		{components.ParticleExplosionHeart, LayerForeground},
		{components.ParticleExplosionConfetti, LayerForeground},
		{components.ParticleCursorHeart, LayerForeground},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := LayerOf(tt.kind); got != tt.want {
				t.Errorf("LayerOf(%v) = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}
}
