package payload

type LikeResponse struct {
	Liked bool   `json:"liked"`
	Count int64  `json:"count"`
	State string `json:"state"`
}
