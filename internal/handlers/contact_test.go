package handlers

import (
	"net/http"
	"testing"
)

func TestCreateConsultationRejectsMalformedEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "missing@tld@twice", "@nodomain"} {
		w := performJSON(t, CreateConsultation(nil), "POST", "/api/consultations",
			`{"full_name": "Anika Perera", "email": "`+email+`", "mode": "online"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for email=%q, got %d (%s)", email, w.Code, w.Body.String())
		}
		detailsContain(t, w, "email must be a valid email address")
	}
}

func TestCreateConsultationValidPayloadReachesStoreGate(t *testing.T) {
	w := performJSON(t, CreateConsultation(nil), "POST", "/api/consultations",
		`{"full_name": "Anika Perera", "email": "anika@example.com", "mode": "in-person"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 after validation passes, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCreateContactMessageRejectsMalformedEmail(t *testing.T) {
	w := performJSON(t, CreateContactMessage(nil), "POST", "/api/contact",
		`{"full_name": "Ravi", "email": "bad email", "topic": "Orders", "message": "Hello"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
	detailsContain(t, w, "email must be a valid email address")
}

func TestConsultationFromRequestPreservesEmailCase(t *testing.T) {
	got := consultationFromRequest(ConsultationRequest{
		FullName: "Anika Perera",
		Email:    "  Anika.Perera@Example.com  ",
		Mode:     "online",
	})
	if got.Email != "Anika.Perera@Example.com" {
		t.Fatalf("expected email case preserved, got %q", got.Email)
	}
	if got.Service != "ayurvedic" {
		t.Fatalf("expected default service, got %q", got.Service)
	}
}

func TestContactMessageFromRequestPreservesEmailCase(t *testing.T) {
	got := contactMessageFromRequest(ContactRequest{
		FullName: "Ravi",
		Email:    "Ravi.K@Example.com",
		Topic:    "Orders",
		Message:  "Hello",
	})
	if got.Email != "Ravi.K@Example.com" {
		t.Fatalf("expected email case preserved, got %q", got.Email)
	}
	if got.Channel != "general" {
		t.Fatalf("expected default channel, got %q", got.Channel)
	}
}

func TestCreateContactMessageRequiresTopicAndMessage(t *testing.T) {
	w := performJSON(t, CreateContactMessage(nil), "POST", "/api/contact",
		`{"full_name": "Ravi", "email": "ravi@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
	detailsContain(t, w, "topic is required")
	detailsContain(t, w, "message is required")
}
