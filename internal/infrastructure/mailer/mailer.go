package mailer

import (
	"fmt"

	"github.com/freshcart/commerce-service/internal/domain"
	"gopkg.in/gomail.v2"
)

// Mailer sends the new-order notification to the store operator. It is
// optional; a nil *Mailer disables notifications.
type Mailer struct {
	sender     string
	password   string
	smtpServer string
	smtpPort   int
	notifyAddr string
}

func CreateMailer(sender string, password string, smtpServer string, smtpPort int, notifyAddr string) *Mailer {
	if smtpServer == "" || notifyAddr == "" {
		return nil
	}

	return &Mailer{
		sender:     sender,
		password:   password,
		smtpServer: smtpServer,
		smtpPort:   smtpPort,
		notifyAddr: notifyAddr,
	}
}

func (m *Mailer) SendOrderNotification(order domain.Order) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.notifyAddr)
	msg.SetHeader("Subject", fmt.Sprintf("New order %s", order.ID.Hex()))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Order %s placed for %.2f, deliver to %s (contact %s).",
		order.ID.Hex(), order.TotalAmount, order.Location, order.PhoneNumber,
	))

	d := gomail.NewDialer(m.smtpServer, m.smtpPort, m.sender, m.password)

	return d.DialAndSend(msg)
}
