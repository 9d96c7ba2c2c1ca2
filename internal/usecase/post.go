package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inklet-dev/inklet/internal/domain"
)

// CreatePostInput is the validated input for publishing a post. Field
// defaulting has already happened at the boundary.
type CreatePostInput struct {
	Title      string
	Body       string
	Author     string
	Attachment *Attachment
}

type PostUsecase struct {
	repo   StoreRepository
	images ImageGateway
}

func NewPostUsecase(repo StoreRepository, images ImageGateway) *PostUsecase {
	return &PostUsecase{repo: repo, images: images}
}

// Create relays the optional attachment, appends the new post and persists
// the whole document. The created post is returned as stored.
func (uc *PostUsecase) Create(ctx context.Context, input CreatePostInput) (domain.Post, error) {
	image := uploadAttachment(ctx, uc.images, input.Attachment)

	post := domain.Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Body:      input.Body,
		Author:    input.Author,
		Image:     image,
		CreatedAt: time.Now().UTC(),
		Comments:  []domain.Comment{},
	}

	_, err := uc.repo.Update(ctx, func(doc *domain.Document) {
		doc.Posts = append(doc.Posts, post)
	})
	if err != nil {
		return domain.Post{}, err
	}

	return post, nil
}

// List returns the posts collection verbatim, oldest first.
func (uc *PostUsecase) List(ctx context.Context) ([]domain.Post, error) {
	doc, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Posts, nil
}
