package model

// UserPayload is the set of claims accepted from a login request. Anything
// else in the request body is dropped before signing.
type UserPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=128"`
	UID      string `json:"uid,omitempty" validate:"omitempty,max=128"`
	PhotoURL string `json:"photoURL,omitempty" validate:"omitempty,url"`
}
