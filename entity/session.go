package entity

// Session is the authenticated identity carried between screens. It is
// created on login or registration and discarded wholesale on sign-out.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
