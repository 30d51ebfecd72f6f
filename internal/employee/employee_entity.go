package employee

// Employee is a single record in the store. IDs start at 1 and are unique;
// the id never changes once assigned.
type Employee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}
