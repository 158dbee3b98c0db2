package events

// Socket event names used by the skribbl.io service. These are wire
// identifiers; do not rename.
const (
	// Outbound
	Login    = "login"
	UserData = "userData"
	Chat     = "chat"

	// Inbound
	Result                  = "result"
	LobbyConnected          = "lobbyConnected"
	LobbyCurrentWord        = "lobbyCurrentWord"
	LobbyLanguage           = "lobbyLanguage"
	LobbyPlayerConnected    = "lobbyPlayerConnected"
	LobbyPlayerDisconnected = "lobbyPlayerDisconnected"
	LobbyPlayerGuessedWord  = "lobbyPlayerGuessedWord"
	DrawCommands            = "drawCommands"
	CanvasClear             = "canvasClear"
)

// LoginURL is the fixed login gateway. It answers a single login request
// with a result carrying the room host to connect to.
const LoginURL = "wss://skribbl.io:4999"
