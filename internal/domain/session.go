package domain

// User identifies a signed-in shopper.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is either signed out (Authenticated false, zero User) or signed
// in with a user profile. There are no intermediate states.
type Session struct {
	Authenticated bool `json:"authenticated"`
	User          User `json:"user"`
}
