package session

// LoginPath is where denied navigations are pointed.
const LoginPath = "/login"

// Decision is the outcome of an access check: either the view may open, or
// the caller should send the user to RedirectTo.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Decide gates entry to protected views. It is a pure function of the
// authenticated state and must be re-evaluated on every entry — the result
// is never cached, so a logout blocks previously open views on the next
// navigation.
func Decide(authenticated bool) Decision {
	if authenticated {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: LoginPath}
}

// Guard is a convenience wrapper evaluating Decide against the store's
// current state.
func (s *Store) Guard() Decision {
	return Decide(s.IsAuthenticated())
}
