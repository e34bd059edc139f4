package leads

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"

	"hqd-api/models"

	"go.uber.org/zap"
)

// SendFunc delivers a raw message. smtp.SendMail satisfies it.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier e-mails the inquiry summary to the team
type SMTPNotifier struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
	Log      *zap.Logger
	// Send defaults to smtp.SendMail
	Send SendFunc
}

func (n *SMTPNotifier) Notify(ctx context.Context, lead models.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := RenderEmail(lead, n.From, n.To)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if n.Username != "" {
		auth = smtp.PlainAuth("", n.Username, n.Password, n.Host)
	}
	send := n.Send
	if send == nil {
		send = smtp.SendMail
	}
	if err := send(net.JoinHostPort(n.Host, n.Port), auth, msg.From, msg.To, msg.Bytes()); err != nil {
		return fmt.Errorf("leads: send email: %w", err)
	}

	n.Log.Info("lead email sent",
		zap.String("lead_id", lead.ID),
		zap.String("subject", msg.Subject),
		zap.Strings("to", msg.To))
	return nil
}

// Bytes renders the message as an RFC 5322 HTML mail. The subject is
// Q-encoded, so user text cannot add header lines.
func (e Email) Bytes() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", e.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(e.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", e.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(e.HTML)
	return b.Bytes()
}
