package models

// User is the server-side account projection mirrored locally while a
// session is active. Optional fields are pointers so that an update request
// can omit them entirely.
type User struct {
	ID            *int64  `json:"id,omitempty"`
	Username      string  `json:"username"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	Password      *string `json:"passwordHash,omitempty"`
	Name          *string `json:"name,omitempty"`
	Cards         []Card  `json:"cards,omitempty"`
	EmailVerified *bool   `json:"emailVerified,omitempty"`
	PhoneVerified *bool   `json:"phoneVerified,omitempty"`
}

// UserCreationResponse is the body of a successful POST /api/users.
type UserCreationResponse struct {
	Message  string  `json:"message"`
	UserID   int64   `json:"userId"`
	Username string  `json:"username"`
	Name     *string `json:"name,omitempty"`
}
