package employee

// CreateEmployeeRequest carries the create payload. Name is enforced by
// binding so a missing name is reported before anything else; ID and Age stay
// untyped because the service has to tell a wrong-typed value ("30", 25.5)
// apart from an absent one, which a concrete field type would collapse into
// a bind error.
type CreateEmployeeRequest struct {
	ID   any     `json:"id"`
	Name *string `json:"name" binding:"required"`
	Age  any     `json:"age"`
}

// UpdateEmployeeRequest carries the update payload. The record id comes from
// the path; an id in the body is ignored.
type UpdateEmployeeRequest struct {
	Name *string `json:"name" binding:"required"`
	Age  any     `json:"age"`
}
