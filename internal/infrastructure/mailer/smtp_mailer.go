// Package mailer implementa el transporte SMTP de los correos de actas.
package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/velatec/activos-api/internal/application/notify"
	"github.com/velatec/activos-api/pkg/config"
)

var _ notify.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementa notify.Mailer sobre un servidor SMTP. Sin servidor
// configurado todo envío falla, dejando la notificación en el outbox para cuando
// se configure uno.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer construye el transporte de correo.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send envía un correo HTML con un adjunto opcional (ruta local).
func (m *SMTPMailer) Send(ctx context.Context, destinatario, asunto, cuerpoHTML string, adjuntoPath *string, adjuntoNombre string) error {
	if !m.cfg.Enabled() {
		return fmt.Errorf("servidor SMTP no configurado")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", destinatario)
	msg.SetHeader("Subject", asunto)
	msg.SetBody("text/html", cuerpoHTML)
	if adjuntoPath != nil && *adjuntoPath != "" {
		nombre := adjuntoNombre
		if nombre == "" {
			nombre = "acta.pdf"
		}
		msg.Attach(*adjuntoPath, gomail.Rename(nombre))
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", destinatario, err)
	}
	return nil
}
