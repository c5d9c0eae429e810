package graph

import "context"

// ListRooms lists the room resources known to the provider's tenant.
func (c *Client) ListRooms(ctx context.Context) ([]RoomResource, error) {
	return collect[RoomResource](ctx, c, "/places/microsoft.graph.room", nil)
}
