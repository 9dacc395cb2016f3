// Package mailer delivers the invitation magic-link emails. Delivery is
// plain-text SMTP; when no host is configured the mailer logs the message
// instead of sending so local development works without a mail server.
package mailer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"studio-booking-backend/internal/config"
	"studio-booking-backend/internal/logger"
)

// dialTimeout bounds the SMTP connection attempt so a dead relay cannot
// stall the invite request.
const dialTimeout = 10 * time.Second

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Mailer defines the interface for outbound mail dispatch
type Mailer interface {
	SendInvitation(toEmail, tenantName, acceptURL string) error
	SendPasswordReset(toEmail, code string) error
}

// SMTPMailer sends mail through a configured SMTP relay
type SMTPMailer struct {
	host       string
	port       string
	username   string
	password   string
	from       string
	enabled    bool
	expiryDays int
	log        *logger.Logger
}

// New creates a mailer from configuration
func New(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUser,
		password:   cfg.SMTPPassword,
		from:       cfg.SMTPFrom,
		enabled:    cfg.SMTPEnabled && cfg.SMTPHost != "",
		expiryDays: cfg.InvitationExpiryDays,
		log:        logger.New(),
	}
}

// SendInvitation composes and delivers the magic-link invitation email.
// The link lands on {origin}/accept-invite?token={token}.
func (m *SMTPMailer) SendInvitation(toEmail, tenantName, acceptURL string) error {
	subject := fmt.Sprintf("Te han invitado a %s", tenantName)
	body := strings.Join([]string{
		"Hola,",
		"",
		fmt.Sprintf("Has sido invitado a unirte al estudio %s.", tenantName),
		"",
		"Completa tu registro desde este enlace:",
		"  " + acceptURL,
		"",
		expiryLine(m.expiryDays),
		"",
		"— Studio Booking",
	}, "\r\n")

	if !m.enabled {
		m.log.WithFields(map[string]interface{}{
			"to":  toEmail,
			"url": acceptURL,
		}).Info("SMTP disabled, invitation mail not sent")
		return nil
	}

	if err := m.send(toEmail, subject, body); err != nil {
		return fmt.Errorf("send invitation mail: %w", err)
	}
	return nil
}

// SendPasswordReset delivers the one-time reset code
func (m *SMTPMailer) SendPasswordReset(toEmail, code string) error {
	subject := "Código para restablecer tu contraseña"
	body := strings.Join([]string{
		"Hola,",
		"",
		"Tu código para restablecer la contraseña es:",
		"  " + code,
		"",
		"El código expira en 15 minutos. Si no solicitaste este cambio, ignora este mensaje.",
		"",
		"— Studio Booking",
	}, "\r\n")

	if !m.enabled {
		m.log.WithFields(map[string]interface{}{
			"to": toEmail,
		}).Info("SMTP disabled, password reset mail not sent")
		return nil
	}

	if err := m.send(toEmail, subject, body); err != nil {
		return fmt.Errorf("send password reset mail: %w", err)
	}
	return nil
}

// expiryLine phrases the configured invitation window for the mail body
func expiryLine(days int) string {
	if days == 1 {
		return "El enlace expira en 1 día."
	}
	return fmt.Sprintf("El enlace expira en %d días.", days)
}

func (m *SMTPMailer) send(toEmail, subject, body string) error {
	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n",
		m.from, toEmail, subject,
	)
	msg := []byte(headers + body + "\r\n")

	addr := m.host + ":" + m.port
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}
	if m.username != "" {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.from); err != nil {
		return err
	}
	if err := client.Rcpt(toEmail); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
