package user

import "time"

// User is the stored account record. Password always holds a bcrypt hash,
// never the plaintext.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // never return
	Number    string    `json:"number"`
	Birthday  time.Time `json:"birthday"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// PublicView is the client-facing shape of a User. It carries no password
// or bookkeeping fields at all, so there is nothing to strip at call sites.
type PublicView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Number    string `json:"number"`
	Birthday  string `json:"birthday,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Public projects the user into its client-facing view.
func (u *User) Public() PublicView {
	v := PublicView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Number:    u.Number,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if !u.Birthday.IsZero() {
		v.Birthday = u.Birthday.Format("2006-01-02")
	}
	return v
}
