package models

// TripDB represents a trip record in the database
type TripDB struct {
	ID        int64  `json:"id" db:"id"`                 // Primary key
	Title     string `json:"title" db:"title"`           // Required trip title
	StartDate *Date  `json:"start_date" db:"start_date"` // Optional first day of the trip
	EndDate   *Date  `json:"end_date" db:"end_date"`     // Optional last day of the trip
	OwnerID   int64  `json:"owner_id" db:"owner_id"`     // Owning user
}

// TripWithItems is a trip together with all of its itinerary items.
type TripWithItems struct {
	TripDB
	Items []ItineraryItemDB `json:"items"`
}

// TripPatch carries a partial trip update. Nil fields keep the stored value.
type TripPatch struct {
	Title     *string `json:"title"`
	StartDate *Date   `json:"start_date"`
	EndDate   *Date   `json:"end_date"`
}
