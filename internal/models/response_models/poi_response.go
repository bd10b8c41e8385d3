package response_models

type POI struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    string  `json:"category,omitempty"`
	UserID      string  `json:"user_id"`

	Images []ImageResponse `json:"images"`
}
