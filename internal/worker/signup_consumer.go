package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/Jannescynatix/ipg/internal/rabbitmq"
	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// SignupWorker consumes giveaway signup events and mails the admin about
// each new entry.
type SignupWorker struct {
	giveawayService *services.GiveawayService
	emailService    *services.EmailService
	adminEmail      string
}

func NewSignupWorker(gs *services.GiveawayService, es *services.EmailService, adminEmail string) *SignupWorker {
	return &SignupWorker{
		giveawayService: gs,
		emailService:    es,
		adminEmail:      adminEmail,
	}
}

// StartWorker starts the consumer process.
// ctx is used for graceful shutdown signal
func (w *SignupWorker) StartWorker(ctx context.Context) error {
	if rabbitmq.Client == nil {
		return fmt.Errorf("RabbitMQ client not initialized")
	}

	ch := rabbitmq.Client.Channel
	qName := rabbitmq.SignupQueueName

	msgs, err := ch.Consume(
		qName,             // queue
		"signup-worker-1", // consumer tag
		false,             // auto-ack (manual ack after successful process)
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf("Signup worker started, waiting for messages in %s", qName)

	go func() {
		for d := range msgs {
			w.processMessage(ctx, d)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, canceling signup consumer")

	if err := ch.Cancel("signup-worker-1", false); err != nil {
		log.Printf("Error canceling consumer: %v", err)
	}

	return nil
}

func (w *SignupWorker) processMessage(ctx context.Context, d amqp.Delivery) {
	idStr := string(d.Body)

	participantID, err := uuid.Parse(idStr)
	if err != nil {
		log.Printf("Invalid participant UUID %q, rejecting", idStr)
		d.Reject(false)
		return
	}

	participant, err := w.giveawayService.GetByUUID(ctx, participantID)
	if err != nil {
		// Entry may have been cleared in the meantime; nothing to notify about
		log.Printf("Participant %s not found, acknowledging to remove from queue", participantID)
		d.Ack(false)
		return
	}

	if w.adminEmail == "" {
		log.Printf("ADMIN_EMAIL not configured, skipping notification for %s", participantID)
		d.Ack(false)
		return
	}

	subject := fmt.Sprintf("New giveaway entry: %s", participant.Name)
	body := fmt.Sprintf(`<h2 style="margin-top: 0; color: #111827;">New giveaway entry</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Address:</strong> %s</p>`, participant.Name, participant.Email, participant.Address)

	if err := w.emailService.SendEmail([]string{w.adminEmail}, subject, body); err != nil {
		log.Printf("Failed to send signup notification to %s: %v", w.adminEmail, err)
	}

	d.Ack(false)
}
