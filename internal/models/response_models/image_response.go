package response_models

type ImageResponse struct {
	ID       string `json:"id"`
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
	PoiID    string `json:"poi_id"`
}
