package formclient

import "strings"

// DefaultInterest is preselected on a new form.
const DefaultInterest = "Request the deck"

// Interests are the choices offered by the request form.
var Interests = []string{
	"Request the deck",
	"Request an intro call",
	"Partnership inquiry",
	"Other",
}

// Form holds the values typed by the user. Website is the hidden honeypot
// and is sent as-is.
type Form struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Org      string `json:"org"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
	Website  string `json:"website"`
}

// NewForm returns an empty form with the default interest.
func NewForm() Form {
	return Form{Interest: DefaultInterest}
}

// Ready reports whether the form passes the local gate: a trimmed name of at
// least 2 characters and a trimmed email of at least 5. The server validates
// again; this only drives the submit button.
func (f Form) Ready() bool {
	return len([]rune(strings.TrimSpace(f.Name))) >= 2 &&
		len([]rune(strings.TrimSpace(f.Email))) >= 5
}
