package domain

// User is the mock identity persisted between runs. There is no real
// authentication behind it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
