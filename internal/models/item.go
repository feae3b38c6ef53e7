package models

// ItineraryItemDB represents an itinerary item record in the database
type ItineraryItemDB struct {
	ID            int64    `json:"id" db:"id"`                         // Primary key
	Day           int      `json:"day" db:"day"`                       // Trip day, 1-based
	OrderSequence int      `json:"order_sequence" db:"order_sequence"` // Position within the day, ties allowed
	PlaceName     string   `json:"place_name" db:"place_name"`         // Required place name
	Address       *string  `json:"address" db:"address"`
	Memo          *string  `json:"memo" db:"memo"`
	Latitude      *float64 `json:"latitude" db:"latitude"`
	Longitude     *float64 `json:"longitude" db:"longitude"`
	TripID        int64    `json:"trip_id" db:"trip_id"` // Owning trip
}

// ItemOwned pairs an itinerary item with the owner of its trip, resolved by
// a join at the data layer. The service checks OwnerID against the acting
// identity before touching the item.
type ItemOwned struct {
	ItineraryItemDB
	OwnerID int64 `db:"owner_id"`
}

// ItemCreate carries the fields accepted when creating an item.
type ItemCreate struct {
	Day           int      `json:"day"`
	OrderSequence int      `json:"order_sequence"`
	PlaceName     string   `json:"place_name"`
	Address       *string  `json:"address"`
	Memo          *string  `json:"memo"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// ItemPatch carries a partial item update. Nil fields keep the stored value.
type ItemPatch struct {
	Day           *int    `json:"day"`
	OrderSequence *int    `json:"order_sequence"`
	Memo          *string `json:"memo"`
}

// OrderUpdate is one entry of a batch reorder request.
type OrderUpdate struct {
	ID            int64 `json:"id"`
	OrderSequence int   `json:"order_sequence"`
}
