// Package dto provides request and response types shared by the wardrobe API.
// These types are used by huma to generate OpenAPI documentation and perform validation.
package dto

// ListResponse is a list response with its length.
type ListResponse[T any] struct {
	Items []T `json:"items" doc:"Matching entries"`
	Total int `json:"total" doc:"Number of entries returned"`
}

// NewListResponse wraps items, substituting an empty list for nil.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// IDParam is a path parameter for resource IDs.
type IDParam struct {
	ID string `path:"id" doc:"Resource identifier"`
}

// MessageResponse is a simple success message response.
type MessageResponse struct {
	Message string `json:"message" doc:"Success message"`
}
