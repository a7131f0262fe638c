package domain

import "strings"

// Choice is one of the three canonical move symbols.
type Choice string

const (
	Rock     Choice = "Rock"
	Paper    Choice = "Paper"
	Scissors Choice = "Scissors"
)

// beats maps each choice to the choice it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// ParseChoice normalizes a raw symbol into a canonical Choice. Anything
// outside the canonical set is rejected so that a malformed symbol can never
// reach the dominance comparison.
func ParseChoice(raw string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	default:
		return "", ErrInvalidChoice
	}
}

// Beats reports whether c defeats other under the cyclic dominance rule.
func (c Choice) Beats(other Choice) bool {
	return beats[c] == other
}

func (c Choice) String() string {
	return string(c)
}
