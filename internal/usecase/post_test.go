package usecase

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/inklet-dev/inklet/internal/domain"
)

type mockStore struct {
	doc     domain.Document
	saveErr error
	saves   int
}

func (m *mockStore) Load(ctx context.Context) (domain.Document, error) {
	doc := m.doc
	doc.Normalize()
	return doc, nil
}

func (m *mockStore) Update(ctx context.Context, mutate func(*domain.Document)) (domain.Document, error) {
	if m.saveErr != nil {
		return domain.Document{}, m.saveErr
	}
	m.doc.Normalize()
	mutate(&m.doc)
	m.saves++
	return m.doc, nil
}

type mockImages struct {
	url      string
	err      error
	uploaded []string
}

func (m *mockImages) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	m.uploaded = append(m.uploaded, filename)
	return m.url, m.err
}

func TestPostCreateAppendsOnce(t *testing.T) {
	store := &mockStore{}
	uc := NewPostUsecase(store, &mockImages{})

	post, err := uc.Create(context.Background(), CreatePostInput{
		Title:  "Hello",
		Body:   "World",
		Author: "Alice",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if post.ID == "" {
		t.Fatalf("expected generated id")
	}
	if post.Image != nil {
		t.Fatalf("expected no image without attachment, got %v", *post.Image)
	}
	if post.Comments == nil || len(post.Comments) != 0 {
		t.Fatalf("expected empty comments at creation")
	}
	if len(store.doc.Posts) != 1 || store.saves != 1 {
		t.Fatalf("expected exactly one append, got %d posts in %d saves", len(store.doc.Posts), store.saves)
	}
	if store.doc.Posts[0].ID != post.ID {
		t.Fatalf("stored post differs from returned post")
	}
}

func TestPostCreateUploadsAttachment(t *testing.T) {
	store := &mockStore{}
	images := &mockImages{url: "https://res.example/img.png"}
	uc := NewPostUsecase(store, images)

	post, err := uc.Create(context.Background(), CreatePostInput{
		Title:      "With image",
		Attachment: &Attachment{Name: "img.png", Data: []byte("png")},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if post.Image == nil || *post.Image != images.url {
		t.Fatalf("expected image url %q, got %v", images.url, post.Image)
	}
	if len(images.uploaded) != 1 || images.uploaded[0] != "img.png" {
		t.Fatalf("expected one upload of img.png, got %v", images.uploaded)
	}
}

func TestPostCreateAbsorbsRelayFailure(t *testing.T) {
	store := &mockStore{}
	images := &mockImages{err: errors.New("image host down")}
	uc := NewPostUsecase(store, images)

	post, err := uc.Create(context.Background(), CreatePostInput{
		Title:      "Still created",
		Attachment: &Attachment{Name: "img.png", Data: []byte("png")},
	})
	if err != nil {
		t.Fatalf("relay failure must not fail creation: %v", err)
	}
	if post.Image != nil {
		t.Fatalf("expected no image after relay failure, got %v", *post.Image)
	}
	if len(store.doc.Posts) != 1 {
		t.Fatalf("expected post persisted despite relay failure")
	}
}

func TestPostCreatePropagatesSaveFailure(t *testing.T) {
	store := &mockStore{saveErr: domain.PersistenceError{Path: "data.json", Err: errors.New("disk full")}}
	uc := NewPostUsecase(store, &mockImages{})

	_, err := uc.Create(context.Background(), CreatePostInput{Title: "doomed"})
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestPostIDsAreUnique(t *testing.T) {
	store := &mockStore{}
	uc := NewPostUsecase(store, &mockImages{})

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		post, err := uc.Create(context.Background(), CreatePostInput{})
		if err != nil {
			t.Fatal(err)
		}
		if seen[post.ID] {
			t.Fatalf("duplicate id %s", post.ID)
		}
		seen[post.ID] = true
	}
}

func TestPostListReturnsStoreOrder(t *testing.T) {
	store := &mockStore{}
	uc := NewPostUsecase(store, &mockImages{})

	first, _ := uc.Create(context.Background(), CreatePostInput{Title: "first"})
	second, _ := uc.Create(context.Background(), CreatePostInput{Title: "second"})

	posts, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != first.ID || posts[1].ID != second.ID {
		t.Fatalf("expected insertion order [%s %s], got %+v", first.ID, second.ID, posts)
	}
}
