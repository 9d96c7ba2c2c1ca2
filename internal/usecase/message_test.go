package usecase

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestMessageCreateAppendsOnce(t *testing.T) {
	store := &mockStore{}
	uc := NewMessageUsecase(store, &mockImages{})

	msg, err := uc.Create(context.Background(), CreateMessageInput{
		Sender:    "Bob",
		Recipient: "Admin",
		Body:      "",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if msg.ID == "" || msg.Date.IsZero() {
		t.Fatalf("expected generated id and date, got %+v", msg)
	}
	if msg.Image != nil {
		t.Fatalf("expected no image without attachment")
	}
	if len(store.doc.Messages) != 1 {
		t.Fatalf("expected one stored message, got %d", len(store.doc.Messages))
	}
}

func TestMessageCreateAbsorbsRelayFailure(t *testing.T) {
	store := &mockStore{}
	uc := NewMessageUsecase(store, &mockImages{err: errors.New("timeout")})

	msg, err := uc.Create(context.Background(), CreateMessageInput{
		Sender:     "Bob",
		Attachment: &Attachment{Name: "pic.jpg", Data: []byte("jpg")},
	})
	if err != nil {
		t.Fatalf("relay failure must not fail creation: %v", err)
	}
	if msg.Image != nil {
		t.Fatalf("expected no image after relay failure")
	}
}

func TestMessageListRoundTrip(t *testing.T) {
	store := &mockStore{}
	uc := NewMessageUsecase(store, &mockImages{})

	sent, err := uc.Create(context.Background(), CreateMessageInput{Sender: "Bob", Recipient: "Admin"})
	if err != nil {
		t.Fatal(err)
	}

	messages, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected one message, got %d", len(messages))
	}
	if messages[0].ID != sent.ID || messages[0].Sender != "Bob" || messages[0].Recipient != "Admin" {
		t.Fatalf("listed message differs from created: %+v", messages[0])
	}
}
