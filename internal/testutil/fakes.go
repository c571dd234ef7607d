package testutil

import (
	"context"

	"github.com/formhub/formhub/internal/app/system/mailer"
)

// RowStoreFake records appended rows in memory. Set Err to make every
// append fail with that error.
type RowStoreFake struct {
	Rows [][]string
	Err  error
}

// AppendRow records a copy of the columns.
func (f *RowStoreFake) AppendRow(ctx context.Context, columns []string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Rows = append(f.Rows, append([]string(nil), columns...))
	return nil
}

// MailSenderFake records sent emails in memory. Set Err to make every
// send fail with that error.
type MailSenderFake struct {
	Sent []mailer.Email
	Err  error
}

// Send records the email.
func (f *MailSenderFake) Send(e mailer.Email) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, e)
	return nil
}
