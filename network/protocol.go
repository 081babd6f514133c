package network

// client -> server
const (
	MsgTypeHeartbeat = 1
	MsgTypeNewRound  = 101
	MsgTypeGuess     = 102
	MsgTypeReveal    = 103
)

// server -> client
const (
	MsgTypeRoundReset     = 301
	MsgTypeLetterRevealed = 302
	MsgTypeKeyMarked      = 303
	MsgTypePartShown      = 304
	MsgTypeStatusUpdated  = 305
	MsgTypeMessageShown   = 306
	MsgTypeError          = 399
)
