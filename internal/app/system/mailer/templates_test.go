package mailer

import (
	"strings"
	"testing"
)

func adaData() SubmissionEmailData {
	return SubmissionEmailData{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Phone:       "Not provided",
		Comment:     "Hello\nWorld",
		SubmittedAt: "January 1, 2024, 12:00 PM UTC",
	}
}

func TestBuildSubmissionEmail_Subject(t *testing.T) {
	email := BuildSubmissionEmail("New Contact Form Submission", adaData())

	want := "New Contact Form Submission from Ada Lovelace"
	if email.Subject != want {
		t.Errorf("subject: got %q, want %q", email.Subject, want)
	}
}

func TestBuildSubmissionEmail_ReplyToAndFromName(t *testing.T) {
	email := BuildSubmissionEmail("New Contact Form Submission", adaData())

	if email.ReplyTo != "ada@example.com" {
		t.Errorf("reply-to: got %q, want submitter email", email.ReplyTo)
	}
	if email.FromName != "Website Contact Form" {
		t.Errorf("from name: got %q", email.FromName)
	}
}

func TestBuildSubmissionEmail_HTMLBody(t *testing.T) {
	email := BuildSubmissionEmail("New Contact Form Submission", adaData())

	if !strings.Contains(email.HTMLBody, "Hello<br>World") {
		t.Error("comment line break not rendered as <br>")
	}
	if !strings.Contains(email.HTMLBody, `mailto:ada@example.com`) {
		t.Error("submitter email not rendered as a mailto link")
	}
	if !strings.Contains(email.HTMLBody, "Not provided") {
		t.Error("phone default missing from HTML body")
	}
	if !strings.Contains(email.HTMLBody, "January 1, 2024, 12:00 PM UTC") {
		t.Error("display timestamp missing from HTML footer")
	}
}

func TestBuildSubmissionEmail_TextBody(t *testing.T) {
	email := BuildSubmissionEmail("New Contact Form Submission", adaData())

	for _, want := range []string{
		"Name: Ada Lovelace",
		"Email: ada@example.com",
		"Phone: Not provided",
		"Hello\nWorld",
		"Submitted January 1, 2024, 12:00 PM UTC",
	} {
		if !strings.Contains(email.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	if strings.Contains(email.TextBody, "<") {
		t.Error("text body should carry no markup")
	}
}

func TestHTMLComment_StripsMarkup(t *testing.T) {
	data := adaData()
	data.Comment = `<script>alert("x")</script>Hi there`

	email := BuildSubmissionEmail("New Contact Form Submission", data)

	if strings.Contains(email.HTMLBody, "<script>") {
		t.Error("script tag survived sanitizing")
	}
	if !strings.Contains(email.HTMLBody, "Hi there") {
		t.Error("comment text lost during sanitizing")
	}
}

func TestHTMLComment_CRLF(t *testing.T) {
	got := htmlComment("one\r\ntwo")
	if string(got) != "one<br>two" {
		t.Errorf("got %q, want %q", got, "one<br>two")
	}
}
