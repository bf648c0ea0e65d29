package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type GiveawayParticipant struct {
	bun.BaseModel `bun:"table:giveaway_participants,alias:gp"`

	ID   int64     `bun:"id,pk,autoincrement" json:"id"`
	UUID uuid.UUID `bun:"uuid,notnull,unique" json:"uuid"`

	// Encrypted content (stored encrypted, decrypted on read)
	NameEncrypted    string `bun:"name_encrypted,notnull" json:"-"`
	EmailEncrypted   string `bun:"email_encrypted,notnull" json:"-"`
	AddressEncrypted string `bun:"address_encrypted,notnull" json:"-"`

	// Decrypted fields (not stored in DB, populated by service)
	Name    string `bun:"-" json:"name"`
	Email   string `bun:"-" json:"email"`
	Address string `bun:"-" json:"address"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:now()" json:"timestamp"`
}

// BeforeInsert hook
var _ bun.BeforeInsertHook = (*GiveawayParticipant)(nil)

func (p *GiveawayParticipant) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	return nil
}
