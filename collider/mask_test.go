package collider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsent(t *testing.T) {
	tests := []struct {
		name     string
		a, b     LayerMask
		mutual   bool
		expected bool
	}{
		{
			name:     "one-directional acceptance, mutual off",
			a:        LayerMask{Layer: 1, CollidesWith: 2},
			b:        LayerMask{Layer: 2, CollidesWith: 0},
			mutual:   false,
			expected: true,
		},
		{
			name:     "one-directional acceptance, mutual on fails",
			a:        LayerMask{Layer: 1, CollidesWith: 2},
			b:        LayerMask{Layer: 2, CollidesWith: 0},
			mutual:   true,
			expected: false,
		},
		{
			name:     "mutual acceptance both ways",
			a:        LayerMask{Layer: 1, CollidesWith: 2},
			b:        LayerMask{Layer: 2, CollidesWith: 1},
			mutual:   true,
			expected: true,
		},
		{
			name:     "exclude vetoes even with acceptance",
			a:        LayerMask{Layer: 1, CollidesWith: 2, Exclude: 2},
			b:        LayerMask{Layer: 2, CollidesWith: 1},
			mutual:   true,
			expected: false,
		},
		{
			name:     "exclude from the other side also vetoes",
			a:        LayerMask{Layer: 1, CollidesWith: 2},
			b:        LayerMask{Layer: 2, CollidesWith: 1, Exclude: 1},
			mutual:   false,
			expected: false,
		},
		{
			name:     "no acceptance at all",
			a:        LayerMask{Layer: 1, CollidesWith: 4},
			b:        LayerMask{Layer: 2, CollidesWith: 4},
			mutual:   false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Consent(tt.a, tt.b, tt.mutual))
		})
	}
}
