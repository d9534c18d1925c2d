package domain

// Page is the backend pagination envelope for list endpoints.
type Page[T any] struct {
	Count    int
	Next     string
	Previous string
	Results  []T
}

// ReviewQuery narrows the review list endpoint. Zero values mean "any".
type ReviewQuery struct {
	Role      Role
	Sentiment Sentiment
	Rating    int
	Search    string
	Page      int
}

// OrderQuery narrows the order list endpoint. Zero values mean "any".
type OrderQuery struct {
	Status OrderStatus
	Page   int
}
