package services

import (
	"context"
	"fmt"

	"github.com/Jannescynatix/ipg/internal/database"
	"github.com/Jannescynatix/ipg/internal/models"
	"github.com/google/uuid"
)

type GiveawayService struct {
	cryptoService *CryptoService
}

func NewGiveawayService(cryptoService *CryptoService) *GiveawayService {
	return &GiveawayService{
		cryptoService: cryptoService,
	}
}

// Create encrypts the entry's PII and persists one participant record.
func (g *GiveawayService) Create(ctx context.Context, name, email, address string) (*models.GiveawayParticipant, error) {
	nameEnc, err := g.cryptoService.Encrypt(name)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}
	emailEnc, err := g.cryptoService.Encrypt(email)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}
	addressEnc, err := g.cryptoService.Encrypt(address)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	participant := &models.GiveawayParticipant{
		NameEncrypted:    nameEnc,
		EmailEncrypted:   emailEnc,
		AddressEncrypted: addressEnc,
	}

	if _, err := database.DB.NewInsert().Model(participant).Exec(ctx); err != nil {
		return nil, err
	}

	// Populate plaintext for the response
	participant.Name = name
	participant.Email = email
	participant.Address = address

	return participant, nil
}

// GetByUUID loads and decrypts a single participant.
func (g *GiveawayService) GetByUUID(ctx context.Context, id uuid.UUID) (*models.GiveawayParticipant, error) {
	participant := new(models.GiveawayParticipant)
	err := database.DB.NewSelect().
		Model(participant).
		Where("uuid = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	g.decrypt(participant)
	return participant, nil
}

// List returns participants newest first. With all=true the result is
// unbounded, otherwise it is capped at ListLimit.
func (g *GiveawayService) List(ctx context.Context, all bool) ([]models.GiveawayParticipant, error) {
	participants := make([]models.GiveawayParticipant, 0)
	query := database.DB.NewSelect().
		Model(&participants).
		Order("created_at DESC")
	if !all {
		query = query.Limit(ListLimit)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}

	for i := range participants {
		g.decrypt(&participants[i])
	}
	return participants, nil
}

func (g *GiveawayService) decrypt(p *models.GiveawayParticipant) {
	p.Name, _ = g.cryptoService.Decrypt(p.NameEncrypted)
	p.Email, _ = g.cryptoService.Decrypt(p.EmailEncrypted)
	p.Address, _ = g.cryptoService.Decrypt(p.AddressEncrypted)
}
