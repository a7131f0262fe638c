package domain_test

import (
	"testing"

	"github.com/hilthontt/showdown/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Choice
	}{
		{"Rock", domain.Rock},
		{"rock", domain.Rock},
		{"ROCK", domain.Rock},
		{"  paper ", domain.Paper},
		{"Scissors", domain.Scissors},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseChoice(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChoiceRejectsUnknownSymbols(t *testing.T) {
	for _, raw := range []string{"", "Lizard", "Spock", "rockk", "paper scissors"} {
		t.Run(raw, func(t *testing.T) {
			_, err := domain.ParseChoice(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidChoice)
		})
	}
}

func TestChoiceBeats(t *testing.T) {
	assert.True(t, domain.Rock.Beats(domain.Scissors))
	assert.True(t, domain.Scissors.Beats(domain.Paper))
	assert.True(t, domain.Paper.Beats(domain.Rock))

	assert.False(t, domain.Rock.Beats(domain.Paper))
	assert.False(t, domain.Rock.Beats(domain.Rock))
}
