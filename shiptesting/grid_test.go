package shiptesting

import (
	"testing"

	"github.com/forestrie/go-shipsearch/rule"
	"github.com/stretchr/testify/require"
)

func TestDisplacement(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		gens    int
		want    Cell
		wantErr error
	}{
		{
			name:  "glider",
			lines: []string{".o.", "..o", "ooo"},
			gens:  4,
			want:  Cell{Row: 1, Col: 1},
		},
		{
			name:  "blinker period",
			lines: []string{"ooo"},
			gens:  2,
			want:  Cell{},
		},
		{
			name:    "blinker half period",
			lines:   []string{"ooo"},
			gens:    1,
			wantErr: ErrNotPeriodic,
		},
		{
			name:  "lwss",
			lines: []string{".o..o", "o....", "o...o", "oooo."},
			gens:  4,
			want:  Cell{Col: -2},
		},
		{
			name:    "empty",
			lines:   []string{"..."},
			gens:    1,
			wantErr: ErrNotPeriodic,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Displacement(tt.lines, rule.Life, tt.gens)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStepBlockIsStill(t *testing.T) {
	g := ParsePattern([]string{"oo", "oo"})
	require.Equal(t, g, Step(g, rule.Life))
}

func TestRequireShip(t *testing.T) {
	tc := NewTestContext(t, TestConfig{TestLabelPrefix: "shiptesting"})
	lwss := []string{".ooo", "o..o", "...o", "...o", "o.o."}
	tc.RequireShip(lwss, rule.Life, 4, 2)
}
