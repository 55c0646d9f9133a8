package service

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"odontocare_backend/internals/configs"
	vmodel "odontocare_backend/internals/features/volunteers/model"
)

// Mailer notifies an applicant about the decision on their application.
// Failures are the caller's to log; a decision is never rolled back because
// mail could not be sent.
type Mailer interface {
	SendDecision(app *vmodel.VolunteerApplicationModel) error
}

// NewMailer returns the SendGrid mailer, or a no-op one when the API key is
// not configured (local/dev).
func NewMailer() Mailer {
	if configs.SendGridAPIKey == "" {
		return noopMailer{}
	}
	return &sendGridMailer{apiKey: configs.SendGridAPIKey}
}

type sendGridMailer struct {
	apiKey string
}

func (m *sendGridMailer) SendDecision(app *vmodel.VolunteerApplicationModel) error {
	subject := "Your volunteer application was reviewed"
	body := fmt.Sprintf("Hello %s,\n\nyour volunteer application submitted on %s was %s.",
		app.Name, app.SubmittedAt.Format("2006-01-02"), app.Status)
	if app.ReviewerNote != nil && *app.ReviewerNote != "" {
		body += "\n\nReviewer note: " + *app.ReviewerNote
	}

	from := mail.NewEmail(configs.MailFromName, configs.MailFrom)
	to := mail.NewEmail(app.Name, app.Email)
	msg := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := sendgrid.NewSendClient(m.apiKey).Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

type noopMailer struct{}

func (noopMailer) SendDecision(app *vmodel.VolunteerApplicationModel) error {
	log.Printf("[MAIL] skipped decision mail to %s (%s): mailer not configured", app.Email, app.Status)
	return nil
}
