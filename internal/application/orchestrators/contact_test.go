package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smartevents/internal/adapters/email"
)

// mockSender implements email.Sender for testing.
type mockSender struct {
	sent []email.SendRequest
	err  error
}

// Send implements email.Sender.
// PRE: req has recipients and a body
// POST: req is recorded
func (m *mockSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.err != nil {
		return email.SendResult{}, m.err
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "msg-001"}, nil
}

func contactInput() ContactInput {
	return ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Venue question",
		Message: "Is the Main Hall wheelchair accessible?",
	}
}

// TestExecuteContact_Valid tests delivery to the campus inbox with the
// visitor as reply-to.
func TestExecuteContact_Valid(t *testing.T) {
	sender := &mockSender{}
	deps := ContactDeps{Sender: sender, To: "info@smartevents.campus", From: "noreply@smartevents.campus"}

	if err := ExecuteContact(context.Background(), contactInput(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one send, got %d", len(sender.sent))
	}
	req := sender.sent[0]
	if req.To[0] != "info@smartevents.campus" {
		t.Errorf("To = %v", req.To)
	}
	if req.ReplyTo != "visitor@example.com" {
		t.Errorf("ReplyTo = %q", req.ReplyTo)
	}
	if req.Subject != "Venue question" {
		t.Errorf("Subject = %q", req.Subject)
	}
}

// TestExecuteContact_EscapesHTML tests that visitor text cannot inject
// markup into the mail body.
func TestExecuteContact_EscapesHTML(t *testing.T) {
	sender := &mockSender{}
	input := contactInput()
	input.Message = `<script>alert("hi")</script>`

	deps := ContactDeps{Sender: sender, To: "info@smartevents.campus", From: "noreply@smartevents.campus"}
	if err := ExecuteContact(context.Background(), input, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(sender.sent[0].HTML, "<script>") {
		t.Error("message markup was not escaped")
	}
}

// TestExecuteContact_Validation tests the form checks.
func TestExecuteContact_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactInput)
	}{
		{"empty name", func(i *ContactInput) { i.Name = " " }},
		{"bad email", func(i *ContactInput) { i.Email = "nope" }},
		{"empty message", func(i *ContactInput) { i.Message = "" }},
		{"message too long", func(i *ContactInput) { i.Message = strings.Repeat("x", MaxMessageLength+1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mockSender{}
			input := contactInput()
			tt.mutate(&input)
			deps := ContactDeps{Sender: sender, To: "info@smartevents.campus", From: "noreply@smartevents.campus"}
			if err := ExecuteContact(context.Background(), input, deps); err == nil {
				t.Error("expected validation error")
			}
			if len(sender.sent) != 0 {
				t.Error("nothing should be sent for invalid input")
			}
		})
	}
}

// TestExecuteContact_DefaultSubject tests the blank-subject fallback.
func TestExecuteContact_DefaultSubject(t *testing.T) {
	sender := &mockSender{}
	input := contactInput()
	input.Subject = "  "
	deps := ContactDeps{Sender: sender, To: "info@smartevents.campus", From: "noreply@smartevents.campus"}
	if err := ExecuteContact(context.Background(), input, deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.sent[0].Subject != "Contact form message" {
		t.Errorf("Subject = %q", sender.sent[0].Subject)
	}
}

// TestExecuteContact_SenderFailure tests that delivery failures surface a
// friendly message.
func TestExecuteContact_SenderFailure(t *testing.T) {
	sender := &mockSender{err: errors.New("resend: 500")}
	deps := ContactDeps{Sender: sender, To: "info@smartevents.campus", From: "noreply@smartevents.campus"}
	err := ExecuteContact(context.Background(), contactInput(), deps)
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "resend") {
		t.Error("internal transport detail leaked to the visitor")
	}
}
