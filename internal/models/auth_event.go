package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Authentication audit trail. One row per event, never updated.

type FailedLogin struct {
	bun.BaseModel `bun:"table:failed_logins,alias:fl"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	IPAddress string    `bun:"ip_address,notnull" json:"ipAddress"`
	Username  string    `bun:"username,notnull" json:"username"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:now()" json:"timestamp"`
}

type SuccessfulLogin struct {
	bun.BaseModel `bun:"table:successful_logins,alias:sl"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	IPAddress string    `bun:"ip_address,notnull" json:"ipAddress"`
	Username  string    `bun:"username,notnull" json:"username"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:now()" json:"timestamp"`
}

type SuccessfulLogout struct {
	bun.BaseModel `bun:"table:successful_logouts,alias:so"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	IPAddress string    `bun:"ip_address,notnull" json:"ipAddress"`
	Username  string    `bun:"username,notnull" json:"username"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:now()" json:"timestamp"`
}

var (
	_ bun.BeforeInsertHook = (*FailedLogin)(nil)
	_ bun.BeforeInsertHook = (*SuccessfulLogin)(nil)
	_ bun.BeforeInsertHook = (*SuccessfulLogout)(nil)
)

func (e *FailedLogin) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return nil
}

func (e *SuccessfulLogin) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return nil
}

func (e *SuccessfulLogout) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return nil
}
