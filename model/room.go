package model

const (
	RoomsCollection    = "rooms"
	PricePerNightField = "pricePerNight"
)
