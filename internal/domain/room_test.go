package domain_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hilthontt/showdown/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures broadcasts per topic so tests can assert on event order.
type recorder struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newRecorder() *recorder {
	return &recorder{messages: make(map[string][]string)}
}

func (r *recorder) Broadcast(topic, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[topic] = append(r.messages[topic], message)
}

func (r *recorder) Messages(topic string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages[topic]...)
}

func TestAddPlayer(t *testing.T) {
	t.Run("first join broadcasts once", func(t *testing.T) {
		rec := newRecorder()
		room := domain.NewRoom("r1", rec)

		ready, err := room.AddPlayer("alice")
		require.NoError(t, err)
		assert.False(t, ready)
		assert.Equal(t, []string{"Player alice joined."}, rec.Messages("r1"))
	})

	t.Run("second join broadcasts joined and ready", func(t *testing.T) {
		rec := newRecorder()
		room := domain.NewRoom("r1", rec)

		_, err := room.AddPlayer("alice")
		require.NoError(t, err)

		ready, err := room.AddPlayer("bob")
		require.NoError(t, err)
		assert.True(t, ready)
		assert.Equal(t, []string{
			"Player alice joined.",
			"Player bob joined.",
			"Game ready to start!",
		}, rec.Messages("r1"))
	})

	t.Run("third join is rejected with no state change", func(t *testing.T) {
		rec := newRecorder()
		room := domain.NewRoom("r1", rec)

		_, err := room.AddPlayer("alice")
		require.NoError(t, err)
		_, err = room.AddPlayer("bob")
		require.NoError(t, err)

		_, err = room.AddPlayer("carol")
		assert.ErrorIs(t, err, domain.ErrRoomFull)

		state := room.State()
		assert.Equal(t, []string{"alice", "bob"}, state.Players)
		assert.NotContains(t, state.Wins, "carol")
		assert.Len(t, rec.Messages("r1"), 3) // nothing broadcast for the rejection
	})

	t.Run("duplicate player is rejected", func(t *testing.T) {
		room := domain.NewRoom("r1", newRecorder())

		_, err := room.AddPlayer("alice")
		require.NoError(t, err)

		_, err = room.AddPlayer("alice")
		assert.ErrorIs(t, err, domain.ErrAlreadyJoined)
		assert.Equal(t, 1, room.PlayerCount())
	})

	t.Run("join initializes the win tally", func(t *testing.T) {
		room := domain.NewRoom("r1", newRecorder())

		_, err := room.AddPlayer("alice")
		require.NoError(t, err)

		state := room.State()
		assert.Equal(t, map[string]int{"alice": 0}, state.Wins)
	})
}

func TestAddPlayerConcurrent(t *testing.T) {
	const joiners = 16

	rec := newRecorder()
	room := domain.NewRoom("r1", rec)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded []string
		full      int
	)

	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			player := fmt.Sprintf("player-%d", i)
			if _, err := room.AddPlayer(player); err == nil {
				mu.Lock()
				succeeded = append(succeeded, player)
				mu.Unlock()
			} else {
				mu.Lock()
				full++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, succeeded, 2)
	assert.Equal(t, joiners-2, full)
	assert.Equal(t, 2, room.PlayerCount())

	state := room.State()
	assert.ElementsMatch(t, succeeded, state.Players)
}

func TestSubmitChoiceResolution(t *testing.T) {
	tests := []struct {
		c1, c2 domain.Choice
		winner string // empty means draw
	}{
		{domain.Rock, domain.Scissors, "alice"},
		{domain.Scissors, domain.Paper, "alice"},
		{domain.Paper, domain.Rock, "alice"},
		{domain.Scissors, domain.Rock, "bob"},
		{domain.Paper, domain.Scissors, "bob"},
		{domain.Rock, domain.Paper, "bob"},
		{domain.Rock, domain.Rock, ""},
		{domain.Paper, domain.Paper, ""},
		{domain.Scissors, domain.Scissors, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s vs %s", tt.c1, tt.c2), func(t *testing.T) {
			rec := newRecorder()
			room := domain.NewRoom("r1", rec)
			_, err := room.AddPlayer("alice")
			require.NoError(t, err)
			_, err = room.AddPlayer("bob")
			require.NoError(t, err)

			recorded, result := room.SubmitChoice("alice", tt.c1)
			require.True(t, recorded)
			assert.Nil(t, result, "round must not resolve on the first choice")

			recorded, result = room.SubmitChoice("bob", tt.c2)
			require.True(t, recorded)
			require.NotNil(t, result)

			state := room.State()
			if tt.winner == "" {
				assert.True(t, result.Draw)
				assert.Equal(t, "Draw!", result.Outcome())
				assert.Equal(t, 0, state.Wins["alice"])
				assert.Equal(t, 0, state.Wins["bob"])
			} else {
				assert.Equal(t, tt.winner, result.Winner)
				assert.Equal(t, tt.winner+" wins!", result.Outcome())
				assert.Equal(t, 1, state.Wins[tt.winner])
			}

			// One increment at most per round, and the round is reset.
			assert.Empty(t, state.Moved)
			assert.Equal(t, result.Outcome(), rec.Messages("r1")[len(rec.Messages("r1"))-1])
		})
	}
}

func TestSubmitChoice(t *testing.T) {
	t.Run("resubmission overwrites the pending choice", func(t *testing.T) {
		room := domain.NewRoom("r1", newRecorder())
		_, err := room.AddPlayer("alice")
		require.NoError(t, err)
		_, err = room.AddPlayer("bob")
		require.NoError(t, err)

		recorded, result := room.SubmitChoice("alice", domain.Rock)
		require.True(t, recorded)
		require.Nil(t, result)
		recorded, result = room.SubmitChoice("alice", domain.Paper)
		require.True(t, recorded)
		require.Nil(t, result)
		assert.Equal(t, []string{"alice"}, room.State().Moved)

		recorded, result = room.SubmitChoice("bob", domain.Rock)
		require.True(t, recorded)
		require.NotNil(t, result)
		assert.Equal(t, "alice", result.Winner, "the overwrite must win, not the first submission")
	})

	t.Run("choice from a player who never joined is ignored", func(t *testing.T) {
		rec := newRecorder()
		room := domain.NewRoom("r1", rec)
		_, err := room.AddPlayer("alice")
		require.NoError(t, err)
		_, err = room.AddPlayer("bob")
		require.NoError(t, err)

		recorded, result := room.SubmitChoice("mallory", domain.Rock)
		assert.False(t, recorded, "a move the room ignored must not be reported as recorded")
		assert.Nil(t, result)
		assert.Empty(t, room.State().Moved)
		assert.Len(t, rec.Messages("r1"), 3) // joins and ready only
	})

	t.Run("single seated player cannot trigger resolution", func(t *testing.T) {
		room := domain.NewRoom("r1", newRecorder())
		_, err := room.AddPlayer("alice")
		require.NoError(t, err)

		recorded, result := room.SubmitChoice("alice", domain.Rock)
		assert.True(t, recorded)
		assert.Nil(t, result)
		assert.Equal(t, []string{"alice"}, room.State().Moved)
	})

	t.Run("wins accumulate across rounds", func(t *testing.T) {
		room := domain.NewRoom("r1", newRecorder())
		_, err := room.AddPlayer("alice")
		require.NoError(t, err)
		_, err = room.AddPlayer("bob")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			room.SubmitChoice("alice", domain.Rock)
			_, result := room.SubmitChoice("bob", domain.Scissors)
			require.NotNil(t, result)
		}

		state := room.State()
		assert.Equal(t, 3, state.Wins["alice"])
		assert.Equal(t, 0, state.Wins["bob"])
	})
}

func TestEndToEndRound(t *testing.T) {
	rec := newRecorder()
	reg := domain.NewRegistry(rec)

	room, err := reg.Create("r1")
	require.NoError(t, err)

	_, err = room.AddPlayer("alice")
	require.NoError(t, err)
	ready, err := room.AddPlayer("bob")
	require.NoError(t, err)
	require.True(t, ready)

	recorded, result := room.SubmitChoice("alice", domain.Rock)
	require.True(t, recorded)
	require.Nil(t, result)
	_, result = room.SubmitChoice("bob", domain.Scissors)
	require.NotNil(t, result)

	assert.Equal(t, []string{
		"Player alice joined.",
		"Player bob joined.",
		"Game ready to start!",
		"Player alice made a move.",
		"Player bob made a move.",
		"alice wins!",
	}, rec.Messages("r1"))

	state := room.State()
	assert.Equal(t, 1, state.Wins["alice"])
	assert.Equal(t, 0, state.Wins["bob"])
	assert.Empty(t, state.Moved)
}

func TestConcurrentRounds(t *testing.T) {
	// Hammer one room with interleaved submissions from both players and
	// check the books still balance: every resolution credits at most one
	// win, so total wins never exceeds resolved rounds.
	room := domain.NewRoom("r1", newRecorder())
	_, err := room.AddPlayer("alice")
	require.NoError(t, err)
	_, err = room.AddPlayer("bob")
	require.NoError(t, err)

	const rounds = 200

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		resolved int
	)

	submit := func(player string, choice domain.Choice) {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if _, result := room.SubmitChoice(player, choice); result != nil {
				mu.Lock()
				resolved++
				mu.Unlock()
			}
		}
	}

	wg.Add(2)
	go submit("alice", domain.Rock)
	go submit("bob", domain.Scissors)
	wg.Wait()

	state := room.State()
	total := state.Wins["alice"] + state.Wins["bob"]
	assert.LessOrEqual(t, total, resolved)
	assert.Equal(t, 0, state.Wins["bob"], "scissors never beats rock")
}
