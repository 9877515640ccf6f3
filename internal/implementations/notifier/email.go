package notifier

import (
	"context"
	"encoding/json"

	"nutritrack/internal/core/domain/notification"
	"nutritrack/internal/core/domain/reminder"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type emailAPI interface {
	SendTemplatedEmail(
		ctx context.Context,
		params *ses.SendTemplatedEmailInput,
		optFns ...func(*ses.Options),
	) (*ses.SendTemplatedEmailOutput, error)
}

// SummaryEmail mails the daily summary reminder through Amazon SES.
// Other labels are ignored.
type SummaryEmail struct {
	ses emailAPI
	// This address must be verified with Amazon SES.
	sender    string
	recipient string
	template  string
}

func NewSummaryEmail(awsConfig aws.Config, sender, recipient, template string) *SummaryEmail {
	return &SummaryEmail{
		ses:       ses.NewFromConfig(awsConfig),
		sender:    sender,
		recipient: recipient,
		template:  template,
	}
}

func (s *SummaryEmail) Notify(ctx context.Context, event notification.Event) error {
	if event.Label != reminder.LabelDailySummary {
		return nil
	}

	templateParamsBytes, err := json.Marshal(
		summaryTemplateParams{
			Title: event.Title,
			Body:  event.Body,
			Date:  event.ScheduledFor.Format("2006-01-02"),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{s.recipient},
			},
			Template:     &s.template,
			TemplateData: &templateParams,
		},
	)
	return err
}

type summaryTemplateParams struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}
