package directory

import (
	"context"
	"time"
)

// User is the directory's view of an identity: who they are and which
// groups they belong to. Attributes beyond these are not consumed anywhere.
type User struct {
	Login       string    `json:"login"`
	Email       string    `json:"email,omitempty"`
	Groups      []string  `json:"groups"`
	Deactivated bool      `json:"deactivated"`
	CreatedAt   time.Time `json:"created_at"`
}

// Page is one page of directory users. NextPageToken is opaque and
// forward-only; an empty token means the listing is exhausted.
type Page struct {
	Users         []User `json:"users"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

// Client is the identity directory the service consumes. The default
// implementation is backed by the user table, but anything that can list
// identities and resolve group memberships can stand in (e.g. an external
// IdP sync).
type Client interface {
	ListUsers(ctx context.Context, pageSize int, pageToken string) (*Page, error)
	GroupsForUser(ctx context.Context, login string) ([]string, error)
}
