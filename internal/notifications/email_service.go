package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"

	"cinebook/internal/shared/config"
)

// EmailService interface defines the contract for sending confirmation emails
type EmailService interface {
	SendOrderConfirmation(ctx context.Context, confirmation *OrderConfirmation) error
}

type smtpEmailService struct {
	cfg      config.EmailConfig
	template *template.Template
}

const confirmationTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Your booking is confirmed! 🎬</h2>
  <p>Order <strong>{{.OrderRef}}</strong></p>
  <table cellpadding="4">
    <tr><td>Movie</td><td><strong>{{.Movie}}</strong></td></tr>
    <tr><td>Date</td><td>{{.ShowDate}}</td></tr>
    <tr><td>Showtime</td><td>{{.Showtime}}</td></tr>
    {{if .Showroom}}<tr><td>Showroom</td><td>{{.Showroom}}</td></tr>{{end}}
    <tr><td>Seats</td><td>{{.SeatList}}</td></tr>
    <tr><td>Tickets</td><td>{{.Adults}} adult, {{.Children}} child, {{.Seniors}} senior</td></tr>
    {{if .PromoCode}}<tr><td>Promo</td><td>{{.PromoCode}}</td></tr>{{end}}
    <tr><td>Total</td><td><strong>${{printf "%.2f" .Total}}</strong></td></tr>
  </table>
  <p>See you at the movies!</p>
</body>
</html>`

// NewSMTPEmailService creates the SMTP-backed email sender. With no SMTP
// host configured it still works but only logs the emails it would send,
// which keeps local development free of mail setup.
func NewSMTPEmailService(cfg config.EmailConfig) (EmailService, error) {
	tmpl, err := template.New("order_confirmation").Parse(confirmationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse confirmation template: %w", err)
	}
	return &smtpEmailService{cfg: cfg, template: tmpl}, nil
}

func (s *smtpEmailService) SendOrderConfirmation(ctx context.Context, confirmation *OrderConfirmation) error {
	if confirmation.RecipientEmail == "" {
		return fmt.Errorf("confirmation %s has no recipient", confirmation.OrderRef)
	}

	body, err := s.renderBody(confirmation)
	if err != nil {
		return err
	}

	if s.cfg.SMTPHost == "" {
		log.Printf("📧 SMTP not configured, would send order %s confirmation to %s",
			confirmation.OrderRef, confirmation.RecipientEmail)
		return nil
	}

	subject := fmt.Sprintf("🎟️ Booking confirmed - %s (%s)", confirmation.Movie, confirmation.OrderRef)
	message := s.buildMessage(confirmation.RecipientEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{confirmation.RecipientEmail}, message); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

func (s *smtpEmailService) renderBody(confirmation *OrderConfirmation) (string, error) {
	data := struct {
		*OrderConfirmation
		SeatList string
	}{
		OrderConfirmation: confirmation,
		SeatList:          strings.Join(confirmation.Seats, ", "),
	}

	var buf bytes.Buffer
	if err := s.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return buf.String(), nil
}

func (s *smtpEmailService) buildMessage(to, subject, body string) []byte {
	var msg bytes.Buffer
	msg.WriteString("From: " + s.cfg.FromEmail + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return msg.Bytes()
}
