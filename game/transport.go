package game

// Transport is what the coordinator needs from the wire layer: room fan-out,
// one-to-one delivery, and the subscription bookkeeping socket.io provides
// through socket.join/leave. Delivery is fire-and-forget; a slow recipient
// must never stall the coordinator or delay delivery to others.
type Transport interface {
	Broadcast(roomID, event string, payload any)
	SendTo(connID, event string, payload any)
	Subscribe(connID, roomID string)
	Unsubscribe(connID, roomID string)
}
