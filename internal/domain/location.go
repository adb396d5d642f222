package domain

// Room and Shelf form the physical taxonomy for copies. They carry no loan
// logic; the loan engine only stores a copy's shelf reference.
type Room struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type Shelf struct {
	ID     int32  `json:"id"`
	Name   string `json:"name"`
	RoomID int32  `json:"room_id"`
}
