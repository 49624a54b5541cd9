package entities

// Caller is the authenticated identity behind a request, resolved by HTTP
// middleware and passed explicitly to use cases.
type Caller struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// Anonymous is the caller of public, token-gated routes.
var Anonymous = Caller{}

func (c Caller) Authenticated() bool {
	return c.UserID != ""
}

// Label identifies the caller in audit notes.
func (c Caller) Label() string {
	switch {
	case c.Email != "":
		return c.Email
	case c.UserID != "":
		return c.UserID
	}
	return "system"
}
