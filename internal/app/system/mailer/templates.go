// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// submitterFromName is the display name notification emails are sent
// under. The reply-to still points at the submitter.
const submitterFromName = "Website Contact Form"

// replySubject is the fixed subject used by the reply action link.
const replySubject = "Re: Your website inquiry"

// commentPolicy strips any markup a submitter pastes into the comment
// before it is interpolated into the HTML body.
var commentPolicy = bluemonday.StrictPolicy()

// SubmissionEmailData holds data for submission notification templates.
type SubmissionEmailData struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Comment     string
	SubmittedAt string // display-formatted, e.g. "January 1, 2024, 12:00 PM UTC"
}

// BuildSubmissionEmail creates the notification for one submission with
// both HTML and text bodies. The recipient (To) is set by the caller.
func BuildSubmissionEmail(subjectPrefix string, data SubmissionEmailData) Email {
	return Email{
		Subject:  fmt.Sprintf("%s from %s %s", subjectPrefix, data.FirstName, data.LastName),
		TextBody: buildSubmissionText(data),
		HTMLBody: buildSubmissionHTML(data),
		ReplyTo:  data.Email,
		FromName: submitterFromName,
	}
}

func buildSubmissionText(data SubmissionEmailData) string {
	var buf bytes.Buffer
	buf.WriteString("You have received a new contact form submission.\n\n")
	buf.WriteString(fmt.Sprintf("Name: %s %s\n", data.FirstName, data.LastName))
	buf.WriteString(fmt.Sprintf("Email: %s\n", data.Email))
	buf.WriteString(fmt.Sprintf("Phone: %s\n", data.Phone))
	buf.WriteString(fmt.Sprintf("Message:\n%s\n\n", data.Comment))
	buf.WriteString(fmt.Sprintf("Submitted %s\n", data.SubmittedAt))
	return buf.String()
}

func buildSubmissionHTML(data SubmissionEmailData) string {
	tmpl := template.Must(template.New("submission").Parse(submissionHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, struct {
		SubmissionEmailData
		Message      template.HTML
		ReplySubject string
	}{
		SubmissionEmailData: data,
		Message:             htmlComment(data.Comment),
		ReplySubject:        replySubject,
	})
	return buf.String()
}

// htmlComment prepares the free-text comment for the HTML body:
// markup is stripped, then line breaks become break tags.
func htmlComment(comment string) template.HTML {
	clean := commentPolicy.Sanitize(comment)
	clean = strings.ReplaceAll(clean, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(clean, "\n", "<br>"))
}

const submissionHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Submission</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 520px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 22px; font-weight: 600; color: #4f46e5;">New Contact Form Submission</h1>
            </td>
          </tr>

          <!-- Fields -->
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 12px; font-size: 15px; color: #374151;">
                <strong>Name:</strong> {{.FirstName}} {{.LastName}}
              </p>
              <p style="margin: 0 0 12px; font-size: 15px; color: #374151;">
                <strong>Email:</strong> <a href="mailto:{{.Email}}" style="color: #4f46e5;">{{.Email}}</a>
              </p>
              <p style="margin: 0 0 12px; font-size: 15px; color: #374151;">
                <strong>Phone:</strong> {{.Phone}}
              </p>
              <p style="margin: 0 0 8px; font-size: 15px; color: #374151;">
                <strong>Message:</strong>
              </p>
              <div style="background-color: #f3f4f6; border-radius: 8px; padding: 16px; font-size: 15px; color: #1f2937; line-height: 1.5;">
                {{.Message}}
              </div>

              <!-- Reply button -->
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="margin-top: 24px;">
                <tr>
                  <td align="center">
                    <a href="mailto:{{.Email}}?subject={{.ReplySubject}}" style="display: inline-block; padding: 12px 28px; background-color: #4f46e5; color: #ffffff; text-decoration: none; font-size: 15px; font-weight: 500; border-radius: 6px;">
                      Reply to {{.FirstName}}
                    </a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>

          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #f9fafb; border-top: 1px solid #e5e7eb; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #9ca3af; text-align: center;">
                Submitted {{.SubmittedAt}}
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
