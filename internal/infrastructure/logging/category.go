package logging

type Category string
type SubCategory string
type ExtraKey string

const (
	General         Category = "General"
	Internal        Category = "Internal"
	Match           Category = "Match"
	RabbitMQ        Category = "RabbitMQ"
	Mongo           Category = "Mongo"
	WebSocket       Category = "WebSocket"
	Validation      Category = "Validation"
	RequestResponse Category = "RequestResponse"
)

const (
	// General
	Startup         SubCategory = "Startup"
	Shutdown        SubCategory = "Shutdown"
	RateLimiting    SubCategory = "RateLimiting"
	ExternalService SubCategory = "ExternalService"

	// Match
	RoomLifecycle SubCategory = "RoomLifecycle"
	RoundPlay     SubCategory = "RoundPlay"
	Broadcasting  SubCategory = "Broadcasting"
)

const (
	AppName      ExtraKey = "AppName"
	LoggerName   ExtraKey = "Logger"
	ClientIp     ExtraKey = "ClientIp"
	Method       ExtraKey = "Method"
	StatusCode   ExtraKey = "StatusCode"
	Path         ExtraKey = "Path"
	Latency      ExtraKey = "Latency"
	RoomName     ExtraKey = "RoomName"
	PlayerName   ExtraKey = "PlayerName"
	ErrorMessage ExtraKey = "ErrorMessage"
)
