package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToDealer(dealerID string, msgType string, payload interface{})
}
