package backup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sandeepkv93/remindd/internal/model"
)

func backupReminders() []model.Reminder {
	created := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	return []model.Reminder{{
		ID:             "r1",
		Title:          "Pay rent",
		Date:           "2024-06-01",
		Time:           "09:00",
		Recurrence:     model.RecurrenceMonthly,
		Category:       model.CategoryPersonal,
		Priority:       model.PriorityHigh,
		Active:         true,
		CreatedAt:      created,
		UpdatedAt:      created,
		NotificationID: "n1",
	}}
}

func TestSendPostsPayloadAndReturnsMessage(t *testing.T) {
	var got struct {
		Secret    string           `json:"secret"`
		Reminders []model.Reminder `json:"reminders"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "message": "saved 1 reminder"})
	}))
	defer srv.Close()

	msg, err := NewClient(time.Second).Send(context.Background(), srv.URL, "s3cret", backupReminders())
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg != "saved 1 reminder" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if got.Secret != "s3cret" || len(got.Reminders) != 1 || got.Reminders[0].ID != "r1" {
		t.Fatalf("unexpected payload: %#v", got)
	}
}

func TestSendApplicationErrorOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "bad secret"})
	}))
	defer srv.Close()

	_, err := NewClient(time.Second).Send(context.Background(), srv.URL, "wrong", backupReminders())
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestSendTransportErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(time.Second).Send(context.Background(), srv.URL, "s", backupReminders())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestSendTransportErrorOnUnreachableEndpoint(t *testing.T) {
	_, err := NewClient(time.Second).Send(context.Background(), "http://127.0.0.1:1/backup", "s", backupReminders())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestSendRequiresEndpoint(t *testing.T) {
	_, err := NewClient(time.Second).Send(context.Background(), "", "s", backupReminders())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport for missing endpoint, got %v", err)
	}
}
