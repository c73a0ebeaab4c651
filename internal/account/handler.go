package account

import (
	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/accounthub/internal/upload"
	"github.com/sudo-init-do/accounthub/internal/user"
)

// Handler exposes the account endpoints over echo.
type Handler struct {
	svc     *Service
	avatars *upload.Store
}

func NewHandler(svc *Service, avatars *upload.Store) *Handler {
	return &Handler{svc: svc, avatars: avatars}
}

// currentUser reads the user the auth middleware resolved and stored on
// the context.
func currentUser(c echo.Context) (*user.User, bool) {
	u, ok := c.Get("user").(*user.User)
	return u, ok && u != nil
}
