package rooms

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hilthontt/showdown/internal/domain"
	"github.com/hilthontt/showdown/internal/infrastructure/configs"
	"github.com/hilthontt/showdown/internal/infrastructure/metrics"
	"github.com/hilthontt/showdown/internal/infrastructure/ws"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Handler, *chi.Mux) {
	t.Helper()

	hub := ws.NewHub(configs.HubConfig{DispatchBuffer: 64, ClientBuffer: 8})
	go hub.Run()

	registry := domain.NewRegistry(hub)
	h := NewHandler(registry, hub, nil, 8)

	r := chi.NewRouter()
	r.Route("/api/rooms", func(r chi.Router) {
		r.Get("/", h.ListRoomsHandler)
		r.Post("/", h.CreateRoomHandler)
		r.Get("/{roomName}", h.GetRoomHandler)
		r.Post("/{roomName}/join", h.JoinRoomHandler)
		r.Post("/{roomName}/choice", h.SubmitChoiceHandler)
	})

	return h, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateRoomHandler(t *testing.T) {
	_, r := newTestRouter(t)

	t.Run("creates a room", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena-1"})

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[createRoomResponse](t, rec)
		assert.Equal(t, "arena-1", resp.Name)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena-1"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		for _, name := range []string{"", "has space", "bad/slash"} {
			rec := doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: name})
			assert.Equal(t, http.StatusBadRequest, rec.Code, "name %q", name)
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListRoomsHandler(t *testing.T) {
	_, r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[listRoomsResponse](t, rec).Rooms)

	doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena-1"})
	doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena-2"})

	rec = doJSON(t, r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []string{"arena-1", "arena-2"}, decode[listRoomsResponse](t, rec).Rooms)
}

func TestJoinRoomHandler(t *testing.T) {
	_, r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena"})

	t.Run("unknown room is not found", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/nowhere/join", joinRoomRequest{Player: "alice"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("first join leaves the room waiting", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "alice"})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[joinRoomResponse](t, rec)
		assert.Equal(t, 1, resp.Seated)
		assert.False(t, resp.Ready)
	})

	t.Run("second join arms the match", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "bob"})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[joinRoomResponse](t, rec)
		assert.Equal(t, 2, resp.Seated)
		assert.True(t, resp.Ready)
	})

	t.Run("third player is rejected", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "carol"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("same player cannot join twice", func(t *testing.T) {
		_, r := newTestRouter(t)
		doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena"})
		doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "alice"})

		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "alice"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects player names with spaces", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "not valid"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitChoiceHandler(t *testing.T) {
	_, r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena"})
	doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "alice"})
	doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "bob"})

	t.Run("unknown room is not found", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/nowhere/choice", submitChoiceRequest{Player: "alice", Choice: "rock"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid choice is a bad request", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/choice", submitChoiceRequest{Player: "alice", Choice: "lizard"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("first move is accepted without a result", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/choice", submitChoiceRequest{Player: "alice", Choice: "rock"})

		require.Equal(t, http.StatusAccepted, rec.Code)
		resp := decode[submitChoiceResponse](t, rec)
		assert.False(t, resp.Resolved)
		assert.Nil(t, resp.Result)
	})

	t.Run("second move resolves the round", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/choice", submitChoiceRequest{Player: "bob", Choice: "scissors"})

		require.Equal(t, http.StatusAccepted, rec.Code)
		resp := decode[submitChoiceResponse](t, rec)
		require.True(t, resp.Resolved)
		require.NotNil(t, resp.Result)
		assert.Equal(t, "alice", resp.Result.Winner)
		assert.False(t, resp.Result.Draw)
		assert.Equal(t, 1, resp.Result.Wins["alice"])
		assert.Equal(t, 0, resp.Result.Wins["bob"])
	})

	t.Run("move from an unseated player changes nothing", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.ChoicesSubmitted)
		stateBefore := decode[domain.RoomState](t, doJSON(t, r, http.MethodGet, "/api/rooms/arena", nil))

		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/choice", submitChoiceRequest{Player: "mallory", Choice: "rock"})

		require.Equal(t, http.StatusAccepted, rec.Code, "ignored moves stay a soft no-op")
		resp := decode[submitChoiceResponse](t, rec)
		assert.False(t, resp.Resolved)
		assert.Nil(t, resp.Result)

		stateAfter := decode[domain.RoomState](t, doJSON(t, r, http.MethodGet, "/api/rooms/arena", nil))
		assert.Equal(t, stateBefore.Moved, stateAfter.Moved)
		assert.Equal(t, before, testutil.ToFloat64(metrics.ChoicesSubmitted),
			"an ignored move must not count as an accepted submission")
	})

	t.Run("choice case is normalized", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/rooms/arena/choice", submitChoiceRequest{Player: "alice", Choice: "PAPER"})
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}

func TestGetRoomHandler(t *testing.T) {
	_, r := newTestRouter(t)

	t.Run("unknown room is not found", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/rooms/nowhere", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns the current snapshot", func(t *testing.T) {
		doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena"})
		doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "alice"})
		doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "bob"})
		doJSON(t, r, http.MethodPost, "/api/rooms/arena/choice", submitChoiceRequest{Player: "alice", Choice: "rock"})

		rec := doJSON(t, r, http.MethodGet, "/api/rooms/arena", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		state := decode[domain.RoomState](t, rec)
		assert.Equal(t, "arena", state.Name)
		assert.ElementsMatch(t, []string{"alice", "bob"}, state.Players)
		assert.Equal(t, []string{"alice"}, state.Moved)
		assert.True(t, state.Ready)
	})
}

func TestSocketSubmitTakesTheSamePath(t *testing.T) {
	h, r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/rooms", createRoomRequest{Name: "arena"})
	doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "alice"})
	doJSON(t, r, http.MethodPost, "/api/rooms/arena/join", joinRoomRequest{Player: "bob"})

	require.NoError(t, h.Submit("arena", "alice", "rock"))

	assert.ErrorIs(t, h.Submit("arena", "alice", "lizard"), domain.ErrInvalidChoice)
	assert.ErrorIs(t, h.Submit("nowhere", "alice", "rock"), domain.ErrRoomNotFound)
	assert.Error(t, h.Submit("arena", "", "rock"), "empty player must fail validation")

	require.NoError(t, h.Submit("arena", "bob", "rock"))

	rec := doJSON(t, r, http.MethodGet, "/api/rooms/arena", nil)
	state := decode[domain.RoomState](t, rec)
	assert.Empty(t, state.Moved, "round should have resolved and cleared pending moves")
}
