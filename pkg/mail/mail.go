package mail

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"tidewatch.xyz/boat-maintenance-service/pkg/common"
)

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

//go:generate mockgen -source=mail.go -destination=mocks/mock_sender.go -package=mocks

// Sender delivers one message. A returned error is a per-recipient soft
// failure for batch callers, never a reason to abort a run.
type Sender interface {
	Send(msg Message) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
}

func SMTPConfigFromEnv() SMTPConfig {
	port := 587
	if v, err := strconv.Atoi(os.Getenv(common.EnvKeySmtpPort)); err == nil && v > 0 {
		port = v
	}
	return SMTPConfig{
		Host:        os.Getenv(common.EnvKeySmtpHost),
		Port:        port,
		Username:    os.Getenv(common.EnvKeySmtpUser),
		Password:    os.Getenv(common.EnvKeySmtpPass),
		FromAddress: os.Getenv(common.EnvKeySmtpFrom),
	}
}

type SMTPSender struct {
	config SMTPConfig
	auth   smtp.Auth
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	s := &SMTPSender{config: config}

	if config.Username != "" && config.Password != "" {
		s.auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	common.GetLoggerWith(common.LoggerNameMailer).Info("SMTP sender initialized",
		zap.String("host", config.Host),
		zap.String("from", config.FromAddress))

	return s
}

func (s *SMTPSender) Send(msg Message) error {
	headers := map[string]string{
		"From":         s.config.FromAddress,
		"To":           msg.To,
		"Subject":      msg.Subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var b strings.Builder
	for k, v := range headers {
		b.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	b.WriteString("\r\n")
	if msg.HTML != "" {
		b.WriteString(msg.HTML)
	} else {
		b.WriteString(msg.Text)
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	return smtp.SendMail(addr, s.auth, s.config.FromAddress, []string{msg.To}, []byte(b.String()))
}
