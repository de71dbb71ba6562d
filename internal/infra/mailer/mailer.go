package mailer

import (
	"bytes"
	"html/template"

	"samhotel-api/internal/pkg/config"
	"samhotel-api/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// ConfirmationData carries everything the booking confirmation template
// renders.
type ConfirmationData struct {
	ClientName  string
	RoomName    string
	CheckIn     string
	CheckOut    string
	Nights      int64
	Adults      int
	Children    int
	MealPlan    string
	TotalAmount string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Booking Confirmed</h2>
	<p>Dear {{.ClientName}},</p>
	<p>Your stay in <strong>{{.RoomName}}</strong> is confirmed.</p>
	<table cellpadding="6">
		<tr><td>Check-in</td><td><strong>{{.CheckIn}}</strong></td></tr>
		<tr><td>Check-out</td><td><strong>{{.CheckOut}}</strong></td></tr>
		<tr><td>Nights</td><td>{{.Nights}}</td></tr>
		<tr><td>Guests</td><td>{{.Adults}} adult(s), {{.Children}} child(ren)</td></tr>
		<tr><td>Meal plan</td><td>{{.MealPlan}}</td></tr>
		<tr><td>Total paid</td><td><strong>{{.TotalAmount}}</strong></td></tr>
	</table>
	<p>We look forward to hosting you.</p>
</body>
</html>`))

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) SendBookingConfirmation(to string, data ConfirmationData) error {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return errs.Wrap(err, "failed to render confirmation email")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your booking is confirmed")
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errs.Wrap(err, "failed to send confirmation email")
	}
	return nil
}
