package dto

type CartAddRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type CartUpdateRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type CartRemoveRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}
