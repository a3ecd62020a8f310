package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/darshan/books-service/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether SMTP is configured. Dependent flows degrade to
// explicit no-ops when it is not.
func (s *Sender) Enabled() bool {
	return s.cfg.MailConfigured()
}

// LoanReminder carries the fields rendered into a reminder email
type LoanReminder struct {
	ClientName    string
	LoanName      string
	LoanType      string
	DueDate       time.Time
	EmiAmount     float64
	DeductionBank string
}

// SendLoanReminder sends an EMI reminder email for one tracked loan
func (s *Sender) SendLoanReminder(to string, reminder LoanReminder) error {
	subject := fmt.Sprintf("Reminder: EMI due in 3 days - %s (%s)",
		reminder.LoanName, reminder.ClientName)

	body := fmt.Sprintf(
		"An installment is due in 3 days. Please ensure sufficient balance in the bank account.\n\n"+
			"Client: %s\n"+
			"Loan: %s (%s)\n"+
			"Due date: %s\n"+
			"EMI amount: %.2f\n",
		reminder.ClientName, reminder.LoanName, reminder.LoanType,
		reminder.DueDate.Format("Monday, 2 January 2006"), reminder.EmiAmount,
	)
	if reminder.DeductionBank != "" {
		body += fmt.Sprintf("Deduction bank: %s\n", reminder.DeductionBank)
	}
	body += "\nThis is an automated reminder. You received this because the next EMI date is 3 days away."

	return s.send(to, subject, body)
}

// SendOtp sends a login OTP for 2-step verification
func (s *Sender) SendOtp(to, username, otp string) error {
	subject := "Your login OTP"
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Use this one-time password to complete your login: %s\n\n"+
			"This OTP is valid for 5 minutes. Do not share it with anyone.\n\n"+
			"If you did not request this, please ignore this email.",
		username, otp,
	)
	return s.send(to, subject, body)
}

func (s *Sender) send(to, subject, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("smtp not configured")
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, subject)
	return nil
}
