package model

// GeoPoint groups every card that shares one exact parsed coordinate pair.
type GeoPoint struct {
	Lat   float64    `json:"lat"`
	Lon   float64    `json:"lon"`
	Cards []GiftCard `json:"cards"`
}
