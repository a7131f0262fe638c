package rooms

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/hilthontt/showdown/internal/domain"
	"github.com/hilthontt/showdown/internal/infrastructure/events"
	"github.com/hilthontt/showdown/internal/infrastructure/json"
	"github.com/hilthontt/showdown/internal/infrastructure/metrics"
	"github.com/hilthontt/showdown/internal/infrastructure/validate"
	"github.com/hilthontt/showdown/internal/infrastructure/ws"
)

var (
	validateRoomName = validate.Field("name",
		validate.Required(),
		validate.LengthBetween(1, 64),
		validate.Matches(`^[a-zA-Z0-9._-]+$`, "may only contain letters, digits, dots, dashes and underscores"),
	)

	validatePlayer = validate.Field("player",
		validate.Required(),
		validate.LengthBetween(1, 32),
		validate.NoSpaces(),
	)
)

type Handler struct {
	registry       *domain.Registry
	hub            *ws.Hub
	matchPublisher *events.MatchPublisher
	upgrader       websocket.Upgrader
	clientBuffer   int
}

func NewHandler(
	registry *domain.Registry,
	hub *ws.Hub,
	matchPublisher *events.MatchPublisher,
	clientBuffer int,
) *Handler {
	return &Handler{
		registry:       registry,
		hub:            hub,
		matchPublisher: matchPublisher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clientBuffer: clientBuffer,
	}
}

// ListRoomsHandler godoc
// @Summary      List rooms
// @Description  Returns the names of all live rooms
// @Tags         rooms
// @Produce      json
// @Success      200 {object} listRoomsResponse "Room names"
// @Router       /rooms [get]
func (h *Handler) ListRoomsHandler(w http.ResponseWriter, r *http.Request) {
	json.Write(w, http.StatusOK, listRoomsResponse{
		Rooms: h.registry.List(),
	})
}

// CreateRoomHandler godoc
// @Summary      Create a new match room
// @Description  Creates an empty two-seat room whose name doubles as its broadcast topic
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body createRoomRequest true "Room creation parameters"
// @Success      201 {object} createRoomResponse "Room created successfully"
// @Failure      400 {object} map[string]interface{} "Bad request - validation error"
// @Failure      409 {object} map[string]interface{} "Conflict - room already exists"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms [post]
func (h *Handler) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := validateRoomName(req.Name); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	room, err := h.registry.Create(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomAlreadyExists):
			json.WriteError(w, http.StatusConflict, err, "Room already exists")
		default:
			log.Printf("Failed to create room %s: %v", req.Name, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	metrics.RoomsCreated.Inc()

	ctx := r.Context()
	if h.matchPublisher != nil {
		if err := h.matchPublisher.PublishRoomCreated(ctx, room.Name()); err != nil {
			log.Printf("Error publishing room created: %v\n", err)
		}
	}

	json.Write(w, http.StatusCreated, createRoomResponse{
		Name: room.Name(),
	})
}

// GetRoomHandler godoc
// @Summary      Get room state
// @Description  Returns a snapshot of the room: seats, win tally and who has moved this round
// @Tags         rooms
// @Produce      json
// @Param        roomName path string true "Room name"
// @Success      200 {object} domain.RoomState "Room snapshot"
// @Failure      404 {object} map[string]interface{} "Room not found"
// @Router       /rooms/{roomName} [get]
func (h *Handler) GetRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomName := chi.URLParam(r, "roomName")

	room, err := h.registry.Get(roomName)
	if err != nil {
		json.WriteError(w, http.StatusNotFound, err, "Room not found")
		return
	}

	json.Write(w, http.StatusOK, room.State())
}

// JoinRoomHandler godoc
// @Summary      Take a seat in a room
// @Description  Seats the player in the room; the second successful join arms the match
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        roomName path string true "Room name"
// @Param        request body joinRoomRequest true "Player to seat"
// @Success      200 {object} joinRoomResponse "Player seated"
// @Failure      400 {object} map[string]interface{} "Bad request - validation error"
// @Failure      404 {object} map[string]interface{} "Room not found"
// @Failure      409 {object} map[string]interface{} "Conflict - room full or player already seated"
// @Router       /rooms/{roomName}/join [post]
func (h *Handler) JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomName := chi.URLParam(r, "roomName")

	var req joinRoomRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := validatePlayer(req.Player); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	room, err := h.registry.Get(roomName)
	if err != nil {
		json.WriteError(w, http.StatusNotFound, err, "Room not found")
		return
	}

	ctx := r.Context()

	ready, err := room.AddPlayer(req.Player)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomFull):
			h.publishJoinRejected(ctx, roomName, req.Player, "room is full")
			json.WriteError(w, http.StatusConflict, err, "Room already has two players")
		case errors.Is(err, domain.ErrAlreadyJoined):
			h.publishJoinRejected(ctx, roomName, req.Player, "already seated")
			json.WriteError(w, http.StatusConflict, err, "You already have a seat in this room")
		default:
			log.Printf("Failed to seat player %s in room %s: %v", req.Player, roomName, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	metrics.PlayersJoined.Inc()

	seated := room.PlayerCount()
	if h.matchPublisher != nil {
		if err := h.matchPublisher.PublishPlayerJoined(ctx, roomName, req.Player, seated); err != nil {
			log.Printf("Error publishing player joined: %v\n", err)
		}
		if ready {
			if err := h.matchPublisher.PublishGameReady(ctx, roomName); err != nil {
				log.Printf("Error publishing game ready: %v\n", err)
			}
		}
	}

	json.Write(w, http.StatusOK, joinRoomResponse{
		Room:   roomName,
		Player: req.Player,
		Seated: seated,
		Ready:  ready,
	})
}

// SubmitChoiceHandler godoc
// @Summary      Submit a move
// @Description  Records the player's choice for the current round; when both players have moved the round resolves and the result is returned
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        roomName path string true "Room name"
// @Param        request body submitChoiceRequest true "Move to record"
// @Success      202 {object} submitChoiceResponse "Move accepted"
// @Failure      400 {object} map[string]interface{} "Bad request - invalid choice"
// @Failure      404 {object} map[string]interface{} "Room not found"
// @Router       /rooms/{roomName}/choice [post]
func (h *Handler) SubmitChoiceHandler(w http.ResponseWriter, r *http.Request) {
	roomName := chi.URLParam(r, "roomName")

	var req submitChoiceRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := validatePlayer(req.Player); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	result, err := h.play(r.Context(), roomName, req.Player, req.Choice)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidChoice):
			json.WriteBadRequestError(w, "Choice must be rock, paper or scissors")
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteError(w, http.StatusNotFound, err, "Room not found")
		default:
			log.Printf("Failed to record choice for %s in room %s: %v", req.Player, roomName, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusAccepted, submitChoiceResponse{
		Room:     roomName,
		Player:   req.Player,
		Choice:   req.Choice,
		Resolved: result != nil,
		Result:   result,
	})
}

// SubscribeHandler godoc
// @Summary      Subscribe to room events over WebSocket
// @Description  Streams every room broadcast to the socket; inbound frames of the form {"player","choice"} are treated as move submissions
// @Tags         rooms
// @Produce      json
// @Param        roomName path string true "Room name"
// @Param        player query string false "Player identity for inbound move frames"
// @Success      101 {object} map[string]interface{} "Switching Protocols - WebSocket connection established"
// @Failure      404 {object} map[string]interface{} "Room not found"
// @Router       /rooms/{roomName}/subscribe [get]
func (h *Handler) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	roomName := chi.URLParam(r, "roomName")

	if _, err := h.registry.Get(roomName); err != nil {
		json.WriteError(w, http.StatusNotFound, err, "Room not found")
		return
	}

	player := r.URL.Query().Get("player")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed for room %s: %v", roomName, err)
		return
	}

	client := ws.NewClient(conn, roomName, player, h.clientBuffer)
	h.hub.Register() <- client

	go client.WriteMessage()
	go client.ReadMessage(h.hub, h)
}

// Submit implements ws.ChoiceSink so moves sent over a subscribed socket take
// the exact same path as HTTP submissions.
func (h *Handler) Submit(room, player, choice string) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	_, err := h.play(context.Background(), room, player, choice)
	return err
}

// play records one move and handles everything downstream of the room:
// metrics, the player.moved event and, when the move completes the round,
// the round.resolved event.
func (h *Handler) play(ctx context.Context, roomName, player, rawChoice string) (*domain.RoundResult, error) {
	choice, err := domain.ParseChoice(rawChoice)
	if err != nil {
		return nil, err
	}

	room, err := h.registry.Get(roomName)
	if err != nil {
		return nil, err
	}

	recorded, result := room.SubmitChoice(player, choice)
	if !recorded {
		// The room ignored the move (player never joined): nothing happened,
		// so nothing is counted or published.
		return nil, nil
	}

	metrics.ChoicesSubmitted.Inc()

	if h.matchPublisher != nil {
		if err := h.matchPublisher.PublishPlayerMoved(ctx, roomName, player); err != nil {
			log.Printf("Error publishing player moved: %v\n", err)
		}
	}

	if result != nil {
		metrics.ResolvedOutcome(result.Draw)
		if h.matchPublisher != nil {
			if err := h.matchPublisher.PublishRoundResolved(ctx, result); err != nil {
				log.Printf("Error publishing round resolved: %v\n", err)
			}
		}
	}

	return result, nil
}

func (h *Handler) publishJoinRejected(ctx context.Context, room, player, reason string) {
	if h.matchPublisher == nil {
		return
	}
	if err := h.matchPublisher.PublishJoinRejected(ctx, room, player, reason); err != nil {
		log.Printf("Error publishing join rejected: %v\n", err)
	}
}
