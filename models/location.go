package models

// Location is a named point tagged with its geohash.
type Location struct {
	ID        string  `json:"id"`
	Latitude  float32 `json:"latitude"`
	Longitude float32 `json:"longitude"`
	Geohash   string  `json:"geohash"`
}
