package notify

import (
	"context"
	"log/slog"
	"time"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/infra/mailer"
	"samhotel-api/internal/infra/payments"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/shared"
)

// Notifier runs post-commit side effects for a new booking: the confirmation
// email always, the mobile-money push only when a phone number was supplied
// and the gateway is configured. Both run off the request goroutine with a
// bounded timeout; failures are logged and never reach the client.
type Notifier struct {
	mailer  *mailer.Mailer
	daraja  *payments.DarajaClient
	uow     shared.UnitOfWork
	timeout time.Duration
}

func NewNotifier(m *mailer.Mailer, d *payments.DarajaClient, uow shared.UnitOfWork, timeout time.Duration) commands.BookingNotifier {
	return &Notifier{mailer: m, daraja: d, uow: uow, timeout: timeout}
}

func (n *Notifier) BookingCreated(b *booking.Booking, roomName string) {
	go n.sendConfirmation(b, roomName)

	if phone := b.Client().Phone(); phone != nil && n.daraja.Enabled() {
		go n.pushPayment(b, *phone)
	}
}

func (n *Notifier) sendConfirmation(b *booking.Booking, roomName string) {
	data := mailer.ConfirmationData{
		ClientName:  b.Client().Name(),
		RoomName:    roomName,
		CheckIn:     b.Stay().CheckIn().Format("2006-01-02"),
		CheckOut:    b.Stay().CheckOut().Format("2006-01-02"),
		Nights:      b.Stay().Nights(),
		Adults:      b.Guests().Adults(),
		Children:    b.Guests().Children(),
		MealPlan:    b.MealPlan().String(),
		TotalAmount: b.TotalAmount().String(),
	}

	if err := n.mailer.SendBookingConfirmation(b.Client().Email(), data); err != nil {
		slog.Error("booking confirmation email failed",
			"booking_id", b.ID(),
			"error", err,
		)
	}
}

func (n *Notifier) pushPayment(b *booking.Booking, phone string) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	raw, err := n.daraja.Push(ctx, phone, payments.AmountForPush(b.TotalAmount().Cents()), b.ID().String())
	if err != nil {
		slog.Error("payment push failed",
			"booking_id", b.ID(),
			"error", err,
		)
		return
	}

	err = n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().SetPaymentResponse(ctx, b.ID(), raw)
	})
	if err != nil {
		slog.Error("failed to record payment response",
			"booking_id", b.ID(),
			"error", err,
		)
	}
}
