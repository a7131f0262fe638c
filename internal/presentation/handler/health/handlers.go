package health

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/hilthontt/showdown/internal/infrastructure/json"
)

var (
	startTime       = time.Now()
	healthy   int32 = 1 // 1: health, 0 = unhealthy
)

// RoomCounter reports how many rooms are live; the registry satisfies it.
type RoomCounter interface {
	List() []string
}

type Handler struct {
	rooms RoomCounter
}

func NewHandler(rooms RoomCounter) *Handler {
	return &Handler{
		rooms: rooms,
	}
}

// GetHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API, including uptime, room count and current timestamp
// @Tags         health
// @Produce      json
// @Success      200 {object} healthResponse "Service is healthy"
// @Failure      503 {object} healthResponse "Service is unhealthy"
// @Router       /health [get]
// @Router       /healthz [get]
// @Router       /ready [get]
// @Router       /live [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(startTime).Round(time.Second).String(),
	}
	if h.rooms != nil {
		resp.Rooms = len(h.rooms.List())
	}

	if atomic.LoadInt32(&healthy) == 0 {
		resp.Status = "unhealthy"
		json.Write(w, http.StatusServiceUnavailable, resp)
		return
	}

	json.Write(w, http.StatusOK, resp)
}
