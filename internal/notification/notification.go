package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/shared/constant"

	"github.com/shopspring/decimal"
)

const TypeBooking = "booking"

// BookingPayload is the event published for every new booking or enquiry.
// The notifier consumes it and mails the front desk.
type BookingPayload struct {
	Type             string          `json:"type"`
	GuestName        string          `json:"guest_name"`
	GuestEmail       string          `json:"guest_email"`
	GuestPhone       string          `json:"guest_phone"`
	CheckInDate      string          `json:"check_in_date"`
	CheckOutDate     string          `json:"check_out_date"`
	NumAdults        int             `json:"num_adults"`
	NumChildren      int             `json:"num_children"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	BookingReference string          `json:"booking_reference"`
	SpecialRequests  string          `json:"special_requests"`
	IsEnquiryOnly    bool            `json:"is_enquiry_only"`
}

type Producer interface {
	BookingCreated(ctx context.Context, payload BookingPayload) error
}

type kafkaProducer struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewProducer(client kafka.Client, cfg *config.Config, otel otel.Otel) Producer {
	return &kafkaProducer{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *kafkaProducer) BookingCreated(ctx context.Context, payload BookingPayload) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload.Type = TypeBooking

	err = p.client.SendMessages(ctx, p.cfg.Kafka.Topic.Notifications, kafka.Message{
		Key:   payload.BookingReference,
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish booking notification: %w", err)
	}

	return nil
}
