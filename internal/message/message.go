package message

// ScrollSettledMsg is sent a short time after a scroll. Only the one carrying the latest UUID is acted on, so a
// burst of scroll events settles once
type ScrollSettledMsg struct {
	UUID string
}
