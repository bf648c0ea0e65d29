package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// AdminUsername is the single account the dashboard authenticates against.
const AdminUsername = "admin"

type AdminUser struct {
	bun.BaseModel `bun:"table:admin_users,alias:au"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Username     string    `bun:"username,notnull,unique" json:"username"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:now()" json:"created_at"`
}

// BeforeInsert hook
var _ bun.BeforeInsertHook = (*AdminUser)(nil)

func (u *AdminUser) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return nil
}
