package recruitment

import "time"

type Posting struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PostingInput struct {
	Title       string
	Description string
	Department  string
	Location    string
	Status      string
	Published   bool
}
