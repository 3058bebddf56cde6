package service

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// NotifyService pushes confirmation messages and schedule summaries out
// by email or SMS. Delivery is best effort: failures are logged, never
// surfaced to the booking flow.
type NotifyService struct {
	log *zap.Logger
}

func NewNotifyService(log *zap.Logger) *NotifyService {
	return &NotifyService{log: log}
}

// SendConfirmationEmail mails the confirmation text asynchronously.
func (s *NotifyService) SendConfirmationEmail(toEmail, toName, message string) {
	subject := "芝麻街補課預約確認"
	go func() {
		if err := sendEmailWithSendGrid(toEmail, toName, subject, message, ""); err != nil {
			s.log.Warn("confirmation email failed", zap.String("to", toEmail), zap.Error(err))
		}
	}()
}

// SendConfirmationSMS sends the confirmation text asynchronously.
func (s *NotifyService) SendConfirmationSMS(toPhone, message string) {
	go func() {
		if err := sendSMS(toPhone, message); err != nil {
			s.log.Warn("confirmation SMS failed", zap.String("to", toPhone), zap.Error(err))
		}
	}()
}

// SendScheduleEmail mails a plain-text schedule summary synchronously;
// the caller (the cron job) already runs off the request path.
func (s *NotifyService) SendScheduleEmail(toEmail, subject, body string) error {
	return sendEmailWithSendGrid(toEmail, "", subject, body, "")
}

func sendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not configured")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Sesame Street School"
	}

	if htmlContent == "" {
		htmlContent = plainTextContent
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid rejected the email: status %d", response.StatusCode)
	}
	return nil
}

func sendSMS(to, message string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || from == "" {
		return fmt.Errorf("twilio is not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
