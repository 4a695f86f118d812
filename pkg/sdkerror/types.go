package sdkerror

type ErrorType uint8

const (
	AlreadyInitialized ErrorType = iota + 1
	FleetMismatch
	ClientNotInitialized
	ServerNotInitialized
	GameSessionEndedFailed
	GameSessionNotReady
	GameSessionReadyFailed
	GameSessionIDNotSet
	InitializationMismatch
	NotInitialized
	NoTargetAliasIDSet
	NoTargetFleetSet
	ProcessEndingFailed
	ProcessNotActive
	ProcessNotReady
	ProcessReadyFailed
	SDKVersionDetectionFailed
	ServiceCallFailed
	UnexpectedPlayerSession
	BadRequest
	InternalService
	Validation
	Canceled
)

type typeInfo struct {
	code    string
	name    string
	message string
}

var types = map[ErrorType]typeInfo{
	AlreadyInitialized: {
		"ALREADY_INITIALIZED", "Already Initialized",
		"Server SDK has already been initialized.",
	},
	FleetMismatch: {
		"FLEET_MISMATCH", "Fleet mismatch.",
		"The Target fleet does not match the request fleet.",
	},
	ClientNotInitialized: {
		"GAMELIFT_CLIENT_NOT_INITIALIZED", "Client not initialized.",
		"The client has not been initialized.",
	},
	ServerNotInitialized: {
		"GAMELIFT_SERVER_NOT_INITIALIZED", "Server SDK not initialized.",
		"The server SDK has not been initialized.",
	},
	GameSessionEndedFailed: {
		"GAME_SESSION_ENDED_FAILED", "Game session failed.",
		"The game session failed to end.",
	},
	GameSessionNotReady: {
		"GAME_SESSION_NOT_READY", "Game session not activated.",
		"The game session associated with this server was not activated.",
	},
	GameSessionReadyFailed: {
		"GAME_SESSION_READY_FAILED", "Game session failed.",
		"The game session failed to become ready.",
	},
	GameSessionIDNotSet: {
		"GAME_SESSION_ID_NOT_SET", "GameSession id is not set.",
		"No game sessions are bound to this process.",
	},
	InitializationMismatch: {
		"INITIALIZATION_MISMATCH", "Initialization mismatch.",
		"Client and server initialization calls do not match.",
	},
	NotInitialized: {
		"NOT_INITIALIZED", "Not Initialized",
		"Server SDK must be initialized before calling this method.",
	},
	NoTargetAliasIDSet: {
		"NO_TARGET_ALIASID_SET", "No target aliasId set.",
		"The aliasId has not been set. Clients should call SetTargetAliasId() before making calls that require an alias.",
	},
	NoTargetFleetSet: {
		"NO_TARGET_FLEET_SET", "No target fleet set.",
		"The target fleet has not been set. Clients should call SetTargetFleet() before making calls that require a fleet.",
	},
	ProcessEndingFailed: {
		"PROCESS_ENDING_FAILED", "Process ending failed.",
		"The process failed to end.",
	},
	ProcessNotActive: {
		"PROCESS_NOT_ACTIVE", "Process not activated.",
		"The process has not yet been activated.",
	},
	ProcessNotReady: {
		"PROCESS_NOT_READY", "Process not ready.",
		"The process has not yet been activated by calling ProcessReady(). Processes in standby cannot receive StartGameSession callbacks.",
	},
	ProcessReadyFailed: {
		"PROCESS_READY_FAILED", "Process ready failed.",
		"The process failed to become ready.",
	},
	SDKVersionDetectionFailed: {
		"SDK_VERSION_DETECTION_FAILED", "Could not detect SDK version.",
		"Could not detect the server SDK version.",
	},
	ServiceCallFailed: {
		"SERVICE_CALL_FAILED", "Service call failed.",
		"A call to the service has failed.",
	},
	UnexpectedPlayerSession: {
		"UNEXPECTED_PLAYER_SESSION", "Unexpected player session.",
		"The player session was not expected by the server. Clients wishing to connect to a server must obtain a PlayerSessionID from the service by creating a player session on the desired server's game instance.",
	},
	BadRequest: {
		"BAD_REQUEST_EXCEPTION", "Bad request exception.",
		"The request was malformed.",
	},
	InternalService: {
		"INTERNAL_SERVICE_EXCEPTION", "Internal service exception.",
		"Internal service exception.",
	},
	Validation: {
		"VALIDATION_EXCEPTION", "Validation exception.",
		"The request failed validation.",
	},
	Canceled: {
		"OPERATION_CANCELED", "Operation canceled.",
		"The operation was canceled before it completed.",
	},
}

func (t ErrorType) String() string {
	if info, ok := types[t]; ok {
		return info.code
	}
	return "UNKNOWN"
}

func (t ErrorType) IsValid() bool {
	_, ok := types[t]
	return ok
}

func (t ErrorType) info() typeInfo {
	if info, ok := types[t]; ok {
		return info
	}
	return typeInfo{
		code:    "UNKNOWN",
		name:    "Unknown error.",
		message: "An unexpected error has occurred.",
	}
}
