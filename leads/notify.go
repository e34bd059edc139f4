// Package leads turns stored inquiries into staff notifications.
package leads

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"hqd-api/models"

	"go.uber.org/zap"
)

// Notifier tells the team about a new lead
type Notifier interface {
	Notify(ctx context.Context, lead models.Lead) error
}

// Email is a rendered notification message
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// LogNotifier only records that a lead arrived. It is used when e-mail is
// switched off.
type LogNotifier struct {
	Log *zap.Logger
}

func (n *LogNotifier) Notify(_ context.Context, lead models.Lead) error {
	n.Log.Info("email disabled, lead saved",
		zap.String("lead_id", lead.ID),
		zap.String("name", lead.Name),
		zap.String("email", lead.Email))
	return nil
}

var emailTmpl = template.Must(template.New("lead").Funcs(template.FuncMap{
	"orNotSpecified": orNotSpecified,
}).Parse(`<div style="font-family: 'Helvetica Neue', Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #0A0A0A; color: #FAF8F5; padding: 40px;">
  <h1 style="color: #D4AF37; font-size: 24px; text-align: center;">HQ.D | New Event Inquiry</h1>
  <div style="border-top: 1px solid #D4AF37; padding-top: 20px;">
    <h2 style="color: #D4AF37; font-size: 18px;">Contact Details</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
  </div>
  <div style="border-top: 1px solid rgba(212,175,55,0.3); padding-top: 20px; margin-top: 20px;">
    <h2 style="color: #D4AF37; font-size: 18px;">Event Details</h2>
    <p><strong>Event Type:</strong> {{.EventType}}</p>
    <p><strong>Date:</strong> {{orNotSpecified .EventDate}}</p>
    <p><strong>City/Venue:</strong> {{.City}} {{.Venue}}</p>
    <p><strong>Guests:</strong> {{orNotSpecified .GuestCount}}</p>
    <p><strong>Duration:</strong> {{orNotSpecified .Duration}}</p>
    <p><strong>Bar Type:</strong> {{.BarType}}</p>
    <p><strong>Theme:</strong> {{orNotSpecified .Theme}}</p>
    <p><strong>Budget Range:</strong> {{orNotSpecified .BudgetRange}}</p>
  </div>
{{- if .SetupInterest}}
  <div style="border-top: 1px solid rgba(212,175,55,0.3); padding-top: 20px; margin-top: 20px;">
    <h2 style="color: #D4AF37; font-size: 18px;">Setup Interest</h2>
    <p>{{.SetupInterest}}</p>
  </div>
{{- end}}
{{- if .Message}}
  <div style="border-top: 1px solid rgba(212,175,55,0.3); padding-top: 20px; margin-top: 20px;">
    <h2 style="color: #D4AF37; font-size: 18px;">Message</h2>
    <p>{{.Message}}</p>
  </div>
{{- end}}
  <p style="color: #D4AF37; font-size: 12px; text-align: center; margin-top: 30px;">Headquarters of Drinks | We Take Drinks Seriously</p>
</div>
`))

// RenderEmail builds the inquiry summary sent to the team for a lead.
// Lead fields are HTML-escaped.
func RenderEmail(lead models.Lead, from, to string) (Email, error) {
	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, lead); err != nil {
		return Email{}, fmt.Errorf("leads: render email: %w", err)
	}
	return Email{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("HQ.D | New %s Inquiry from %s", lead.EventType, lead.Name),
		HTML:    buf.String(),
	}, nil
}
