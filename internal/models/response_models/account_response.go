package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	NumOfPoi  int      `json:"num_of_poi"`
	Scope     []string `json:"scope"`
	IsAdmin   bool     `json:"is_admin"`
}
