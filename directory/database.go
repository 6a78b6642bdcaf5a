package directory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/openfactor/factorhub/db/models"
	"github.com/uptrace/bun"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// DatabaseDirectory serves directory lookups from the user table. Logins are
// the pagination cursor: a page token is the last login of the previous page.
type DatabaseDirectory struct {
	db *bun.DB
}

func NewDatabaseDirectory(db *bun.DB) *DatabaseDirectory {
	return &DatabaseDirectory{db: db}
}

func (d *DatabaseDirectory) ListUsers(ctx context.Context, pageSize int, pageToken string) (*Page, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	var users []models.User
	query := d.db.NewSelect().Model(&users).Order("login ASC").Limit(pageSize)
	if pageToken != "" {
		query = query.Where("login > ?", pageToken)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}

	page := &Page{Users: make([]User, len(users))}
	for i, user := range users {
		page.Users[i] = User{
			Login:       user.Login,
			Email:       user.Email.String,
			Groups:      user.Groups,
			Deactivated: user.Deactivated,
			CreatedAt:   user.CreatedAt,
		}
	}
	if len(users) == pageSize {
		page.NextPageToken = users[len(users)-1].Login
	}
	return page, nil
}

func (d *DatabaseDirectory) GroupsForUser(ctx context.Context, login string) ([]string, error) {
	var user models.User
	err := d.db.NewSelect().Model(&user).Column("groups").Where("login = ?", login).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		// unknown identity has no memberships
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return user.Groups, nil
}

var _ Client = (*DatabaseDirectory)(nil)
