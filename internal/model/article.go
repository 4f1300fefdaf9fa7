package model

const PlaceholderImageURL = "https://via.placeholder.com/300x200.png?text=No+Image"

type Article struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	// Image is an older field name some feeds still send. Never emitted by the API.
	Image string `json:"image,omitempty"`
}
