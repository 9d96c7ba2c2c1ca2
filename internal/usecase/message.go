package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inklet-dev/inklet/internal/domain"
)

// CreateMessageInput is the validated input for sending a message.
type CreateMessageInput struct {
	Sender     string
	Recipient  string
	Body       string
	Attachment *Attachment
}

type MessageUsecase struct {
	repo   StoreRepository
	images ImageGateway
}

func NewMessageUsecase(repo StoreRepository, images ImageGateway) *MessageUsecase {
	return &MessageUsecase{repo: repo, images: images}
}

func (uc *MessageUsecase) Create(ctx context.Context, input CreateMessageInput) (domain.Message, error) {
	image := uploadAttachment(ctx, uc.images, input.Attachment)

	message := domain.Message{
		ID:        uuid.NewString(),
		Sender:    input.Sender,
		Recipient: input.Recipient,
		Body:      input.Body,
		Date:      time.Now().UTC(),
		Image:     image,
	}

	_, err := uc.repo.Update(ctx, func(doc *domain.Document) {
		doc.Messages = append(doc.Messages, message)
	})
	if err != nil {
		return domain.Message{}, err
	}

	return message, nil
}

func (uc *MessageUsecase) List(ctx context.Context) ([]domain.Message, error) {
	doc, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Messages, nil
}
