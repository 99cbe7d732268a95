package domain

// Message is a message record of the remote API. UserID references the
// author and may dangle once that user is deleted.
type Message struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UserID    int64     `json:"userId"`
	CreatedAt Timestamp `json:"createdAt"`
}

// NewMessage is the create payload for a message.
type NewMessage struct {
	Content string `json:"content"`
	UserID  int64  `json:"userId"`
}
