package request_models

// CreatePoiRequest carries the multipart form fields for a new POI.
// Image holds the raw bytes of the optional initial upload; an empty
// payload is legal and skipped.
type CreatePoiRequest struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Latitude    float64 `form:"latitude" binding:"required"`
	Longitude   float64 `form:"longitude" binding:"required"`
	Category    string  `form:"category" binding:"required"`

	Image            []byte `form:"-"`
	ImageContentType string `form:"-"`
}

type UpdatePoiRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}
