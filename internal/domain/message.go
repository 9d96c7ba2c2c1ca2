package domain

import "time"

// Message is a direct message between two named parties.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Body      string    `json:"body"`
	Date      time.Time `json:"date"`
	Image     *string   `json:"image"`
}
