package dto

// ProductRequest carries the multipart form fields of the upload route. Price
// arrives as the raw form value and is coerced to a number by the service.
type ProductRequest struct {
	Name        string
	Description string
	Price       string
	Category    string
}
