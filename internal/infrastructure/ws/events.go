package ws

const (
	RoomBroadcast = "room.broadcast"

	ErrorEvent  = "error"
	RateLimited = "error.rate_limited"
)
