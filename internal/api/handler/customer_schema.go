package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Email syntax is deliberately not checked here: the service validates it
// after trimming and lower-casing, so " Jane@Example.com " normalizes
// instead of failing.
type createCustomerRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
}

type updateCustomerRequest struct {
	ID    int64  `json:"id"    validate:"required,gt=0"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
}

type deleteCustomerResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
