package domain

// User is a user record of the remote API.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// NewUser is the create payload for a user.
type NewUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Age      *int   `json:"age,omitempty"`
	City     string `json:"city,omitempty"`
}
