package catalog

// User is an assignable system user. The ID doubles as the assignee value
// stored on tickets.
type User struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Role string `json:"role" yaml:"role"`
}
