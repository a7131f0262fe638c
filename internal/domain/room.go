package domain

import (
	"errors"
	"fmt"
	"sync"
)

const maxPlayers = 2

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room already exists")
	ErrRoomFull          = errors.New("room is full")
	ErrAlreadyJoined     = errors.New("already in room")
	ErrInvalidChoice     = errors.New("invalid choice")
)

// Broadcaster delivers a message to every current subscriber of a topic.
// A room publishes every event on the topic named after it. Delivery is
// fire-and-forget: the room calls Broadcast while holding its own lock, so
// implementations must hand the message off without blocking on transport.
type Broadcaster interface {
	Broadcast(topic, message string)
}

// Room is an isolated two-player match context: a seat list, the pending
// choices of the current round, and the cumulative win tally. All mutation
// goes through AddPlayer and SubmitChoice, which serialize on the room mutex.
type Room struct {
	name        string
	broadcaster Broadcaster

	mu      sync.Mutex
	players []string
	choices map[string]Choice
	wins    map[string]int
}

// RoundResult describes one resolved round.
type RoundResult struct {
	Room    string            `json:"room"`
	Winner  string            `json:"winner,omitempty"`
	Draw    bool              `json:"draw"`
	Choices map[string]Choice `json:"choices"`
	Wins    map[string]int    `json:"wins"`
}

// Outcome is the message broadcast to the room when the round resolved.
func (r *RoundResult) Outcome() string {
	if r.Draw {
		return "Draw!"
	}
	return fmt.Sprintf("%s wins!", r.Winner)
}

// RoomState is a consistent snapshot of a room for read endpoints.
type RoomState struct {
	Name    string         `json:"name"`
	Players []string       `json:"players"`
	Wins    map[string]int `json:"wins"`
	Moved   []string       `json:"moved"`
	Ready   bool           `json:"ready"`
}

func NewRoom(name string, broadcaster Broadcaster) *Room {
	return &Room{
		name:        name,
		broadcaster: broadcaster,
		players:     make([]string, 0, maxPlayers),
		choices:     make(map[string]Choice, maxPlayers),
		wins:        make(map[string]int, maxPlayers),
	}
}

// Name returns the immutable room identifier, which doubles as its topic.
func (r *Room) Name() string {
	return r.name
}

// AddPlayer seats a player. The capacity check and the seat mutation happen
// under one lock acquisition, so two concurrent joins can never both take the
// last seat. ready is true when this join completed the pair.
func (r *Room) AddPlayer(player string) (ready bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.players) >= maxPlayers {
		return false, ErrRoomFull
	}
	for _, p := range r.players {
		if p == player {
			return false, ErrAlreadyJoined
		}
	}

	r.players = append(r.players, player)
	r.wins[player] = 0

	r.broadcaster.Broadcast(r.name, fmt.Sprintf("Player %s joined.", player))
	if len(r.players) == maxPlayers {
		r.broadcaster.Broadcast(r.name, "Game ready to start!")
		return true, nil
	}
	return false, nil
}

// SubmitChoice records a pending choice for the current round. A choice from
// a player who never joined is ignored: no state change, no broadcast, and
// recorded is false so callers can suppress their own side effects too.
// Resubmitting before the opponent moves overwrites the earlier choice. Once
// both seated players have a pending choice the round resolves synchronously,
// still under the room lock, and the result is returned; otherwise nil.
func (r *Room) SubmitChoice(player string, choice Choice) (recorded bool, result *RoundResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.seated(player) {
		return false, nil
	}

	r.choices[player] = choice
	r.broadcaster.Broadcast(r.name, fmt.Sprintf("Player %s made a move.", player))

	if len(r.players) == maxPlayers && len(r.choices) == maxPlayers {
		return true, r.resolve()
	}
	return true, nil
}

// resolve computes the outcome of a completed round, credits the winner,
// broadcasts the result and clears the pending choices so the same pair can
// play the next round. Caller must hold r.mu.
func (r *Room) resolve() *RoundResult {
	p1, p2 := r.players[0], r.players[1]
	c1, c2 := r.choices[p1], r.choices[p2]

	result := &RoundResult{
		Room:    r.name,
		Choices: map[string]Choice{p1: c1, p2: c2},
	}

	switch {
	case c1 == c2:
		result.Draw = true
	case c1.Beats(c2):
		result.Winner = p1
		r.wins[p1]++
	default:
		result.Winner = p2
		r.wins[p2]++
	}

	result.Wins = map[string]int{p1: r.wins[p1], p2: r.wins[p2]}

	r.broadcaster.Broadcast(r.name, result.Outcome())
	clear(r.choices)

	return result
}

func (r *Room) seated(player string) bool {
	for _, p := range r.players {
		if p == player {
			return true
		}
	}
	return false
}

// PlayerCount returns the number of seated players.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// State returns a snapshot taken under the room lock. Pending choices are
// reported only as who has moved, never what they played.
func (r *Room) State() RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := RoomState{
		Name:    r.name,
		Players: append([]string(nil), r.players...),
		Wins:    make(map[string]int, len(r.wins)),
		Moved:   make([]string, 0, len(r.choices)),
		Ready:   len(r.players) == maxPlayers,
	}
	for p, w := range r.wins {
		state.Wins[p] = w
	}
	for _, p := range r.players {
		if _, ok := r.choices[p]; ok {
			state.Moved = append(state.Moved, p)
		}
	}
	return state
}
