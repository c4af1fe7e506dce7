package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{"PC", PlatformPC},
		{"ps5", PlatformPS5},
		{"UFL XBOX", PlatformXBOX},
		{" ufl pc ", PlatformPC},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlatform(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePlatform("switch")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("ko")
	require.NoError(t, err)
	assert.Equal(t, MethodKO, m)

	_, err = ParseMethod("submission")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFightLoser(t *testing.T) {
	f := Fight{Fighter1: "Alice", Fighter2: "Bob", Winner: "alice"}
	assert.Equal(t, "Bob", f.Loser())
	assert.True(t, f.Involves(" BOB "))

	f.Winner = DrawWinner
	assert.Empty(t, f.Loser())
}

func TestFightPatchKeepsUnsetFields(t *testing.T) {
	winner := "Bob"
	f := Fight{Fighter1: "Alice", Fighter2: "Bob", Winner: "Alice", Method: MethodKO, Platform: PlatformPC}

	in := FightPatch{Winner: &winner}.Apply(f)

	assert.Equal(t, "Bob", in.Winner)
	assert.Equal(t, "Alice", in.Fighter1)
	assert.Equal(t, MethodKO, in.Method)
}

func TestKind(t *testing.T) {
	err := fmt.Errorf("add fight: %w", ErrSelfFight)
	assert.Equal(t, "SelfFight", Kind(err))
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrStoreUnavailable))
	assert.Empty(t, Kind(errors.New("boom")))
}
