package domain

type UserStats struct {
	Total  int `json:"total"`
	WithVK int `json:"with_vk"`
	Male   int `json:"male"`
	Female int `json:"female"`
}

type PosterStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type Stats struct {
	Users   UserStats   `json:"users"`
	Posters PosterStats `json:"posters"`
}
