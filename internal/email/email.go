package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelagent/internal/kafka"
)

// Sender is a mocked confirmation channel: it prints the message and reports
// delivery as sent. Real delivery is out of scope.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		return nil
	}
	fmt.Printf("send email to %s: booking %s %s -> %s on %s\n",
		event.Email, event.ConfirmationCode, event.Origin, event.Destination, event.TravelDate)
	return nil
}
