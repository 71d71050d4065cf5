package model

const (
	BookingsCollection = "bookings"
	RoomIDField        = "room_id"
	EmailField         = "email"
)

// BookingUpdate is the fixed field set replaced by a booking update. Values
// are kept as decoded from the request body; missing ones are stored as null.
type BookingUpdate struct {
	CheckInDate   interface{} `bson:"checkInDate"`
	CheckOutDate  interface{} `bson:"checkOutDate"`
	NumRooms      interface{} `bson:"numRooms"`
	NumAdults     interface{} `bson:"numAdults"`
	NumChildren   interface{} `bson:"numChildren"`
	TotalCost     interface{} `bson:"totalCost"`
	RoomID        interface{} `bson:"room_id"`
	PricePerNight interface{} `bson:"pricePerNight"`
}

func BookingUpdateFromDocument(doc Document) BookingUpdate {
	return BookingUpdate{
		CheckInDate:   doc["checkInDate"],
		CheckOutDate:  doc["checkOutDate"],
		NumRooms:      doc["numRooms"],
		NumAdults:     doc["numAdults"],
		NumChildren:   doc["numChildren"],
		TotalCost:     doc["totalCost"],
		RoomID:        doc["room_id"],
		PricePerNight: doc["pricePerNight"],
	}
}

// Fields returns the update as a flat document keyed by storage field name.
func (u BookingUpdate) Fields() Document {
	return Document{
		"checkInDate":   u.CheckInDate,
		"checkOutDate":  u.CheckOutDate,
		"numRooms":      u.NumRooms,
		"numAdults":     u.NumAdults,
		"numChildren":   u.NumChildren,
		"totalCost":     u.TotalCost,
		"room_id":       u.RoomID,
		"pricePerNight": u.PricePerNight,
	}
}
