package directory

import (
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/userdir/internal/directory/users"
)

// WriteUser prints the user information block. CreatedAt is rendered as
// RFC 3339 in UTC.
func WriteUser(w io.Writer, u users.User) error {
	_, err := fmt.Fprintf(w,
		"User Information:\nID: %d\nName: %s\nEmail: %s\nCreated: %s\n",
		u.ID, u.Name, u.Email, u.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}
