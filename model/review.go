package model

const (
	ReviewsCollection = "reviews"
	ReviewIDField     = "review_id"
	RatingField       = "rating"
	TimestampField    = "timestamp"
)
