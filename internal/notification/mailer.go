package notification

import (
	"context"
	"fmt"
	"strings"

	"resort/config"
	"resort/infras/kafka"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer consumes booking notifications and mails the front desk inbox.
type Mailer struct {
	client kafka.Client
	cfg    *config.Config
	dialer dialer
}

func NewMailer(client kafka.Client, cfg *config.Config) *Mailer {
	return &Mailer{
		client: client,
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
	}
}

// Run blocks consuming the notifications topic until ctx is cancelled.
func (m *Mailer) Run(ctx context.Context) {
	m.client.Consume(ctx, m.cfg.Kafka.ConsumerGroup, m.cfg.Kafka.Topic.Notifications, m.Handle)
}

func (m *Mailer) Handle(msg kafkaGo.Message) {
	payload, err := kafka.DecodeKafkaMessage[BookingPayload](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode booking notification")

		return
	}

	if payload.Type != TypeBooking {
		log.Warn().Str("type", payload.Type).Msg("ignoring notification of unknown type")

		return
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.cfg.SMTP.From)
	mail.SetHeader("To", m.cfg.SMTP.Recipient)
	mail.SetHeader("Subject", Subject(payload))
	mail.SetBody("text/plain", Body(payload))

	if err := m.dialer.DialAndSend(mail); err != nil {
		log.Error().Err(err).Str("bookingReference", payload.BookingReference).Msg("failed to send booking notification email")

		return
	}

	log.Info().Str("bookingReference", payload.BookingReference).Msg("booking notification email sent")
}

func Subject(payload BookingPayload) string {
	if payload.IsEnquiryOnly {
		return fmt.Sprintf("New enquiry %s from %s", payload.BookingReference, payload.GuestName)
	}

	return fmt.Sprintf("New booking %s from %s", payload.BookingReference, payload.GuestName)
}

func Body(payload BookingPayload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Guest: %s\n", payload.GuestName)
	fmt.Fprintf(&b, "Email: %s\n", payload.GuestEmail)
	fmt.Fprintf(&b, "Phone: %s\n", payload.GuestPhone)
	fmt.Fprintf(&b, "Stay: %s to %s\n", payload.CheckInDate, payload.CheckOutDate)
	fmt.Fprintf(&b, "Guests: %d adults, %d children\n", payload.NumAdults, payload.NumChildren)
	fmt.Fprintf(&b, "Grand total: %s\n", payload.GrandTotal.StringFixed(2))

	if payload.SpecialRequests != "" {
		fmt.Fprintf(&b, "Special requests: %s\n", payload.SpecialRequests)
	}

	if payload.IsEnquiryOnly {
		b.WriteString("\nThis is an enquiry only, no rooms were blocked.\n")
	}

	return b.String()
}
