package dto

type CategoryRequest struct {
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
	Cor  string `json:"cor"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Tipo      string `json:"tipo"`
	Cor       string `json:"cor"`
	CreatedAt string `json:"created_at"`
}
