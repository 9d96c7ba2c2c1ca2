package rest

import (
	"io"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inklet-dev/inklet/internal/domain"
	"github.com/inklet-dev/inklet/internal/present/rest/presenter"
	"github.com/inklet-dev/inklet/internal/service"
	"github.com/inklet-dev/inklet/internal/usecase"
)

type Handler struct {
	post    *usecase.PostUsecase
	message *usecase.MessageUsecase
	signal  *service.SignalService
}

// NewHandler builds the REST handler. signal may be nil; the realtime
// endpoint is only registered when it is present.
func NewHandler(
	post *usecase.PostUsecase,
	message *usecase.MessageUsecase,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		post:    post,
		message: message,
		signal:  signal,
	}
}

// RegisterRoutes attaches all routes. admin gates post creation only; message
// creation is deliberately left open, matching the upstream contract.
func (h *Handler) RegisterRoutes(e *echo.Echo, admin echo.MiddlewareFunc) {
	e.GET("/api/posts", h.handleListPosts)
	e.POST("/api/posts", h.handleCreatePost, admin)
	e.GET("/api/messages", h.handleListMessages)
	e.POST("/api/messages", h.handleCreateMessage)
	if h.signal != nil {
		e.GET("/realtime", h.handleRealtime)
	}
}

// Field defaults are declared as explicit tables rather than scattered
// "or empty string" checks, so the boundary contract is readable in one
// place.
var postDefaults = struct {
	Title, Body, Author string
}{
	Author: "Unknown",
}

var messageDefaults = struct {
	Sender, Recipient, Body string
}{
	Sender:    "Guest",
	Recipient: "Admin",
}

func orDefault(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

type createPostRequest struct {
	Title  *string `json:"title" form:"title"`
	Body   *string `json:"body" form:"body"`
	Author *string `json:"author" form:"author"`
}

type createMessageRequest struct {
	Sender    *string `json:"sender" form:"sender"`
	Recipient *string `json:"recipient" form:"recipient"`
	Body      *string `json:"body" form:"body"`
}

func (h *Handler) handleListPosts(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.post.List(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, posts)
}

func (h *Handler) handleCreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	post, err := h.post.Create(ctx, usecase.CreatePostInput{
		Title:      orDefault(req.Title, postDefaults.Title),
		Body:       orDefault(req.Body, postDefaults.Body),
		Author:     orDefault(req.Author, postDefaults.Author),
		Attachment: formAttachment(c, "image"),
	})
	if err != nil {
		return presenter.InternalError(c, err)
	}

	h.notify(c, domain.EventPostCreated, post)
	return presenter.OK(c, post)
}

func (h *Handler) handleListMessages(c echo.Context) error {
	ctx := c.Request().Context()

	messages, err := h.message.List(ctx)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, messages)
}

func (h *Handler) handleCreateMessage(c echo.Context) error {
	ctx := c.Request().Context()

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	message, err := h.message.Create(ctx, usecase.CreateMessageInput{
		Sender:     orDefault(req.Sender, messageDefaults.Sender),
		Recipient:  orDefault(req.Recipient, messageDefaults.Recipient),
		Body:       orDefault(req.Body, messageDefaults.Body),
		Attachment: formAttachment(c, "image"),
	})
	if err != nil {
		return presenter.InternalError(c, err)
	}

	h.notify(c, domain.EventMessageCreated, message)
	return presenter.OK(c, message)
}

// formAttachment extracts the named multipart file, if any. A request without
// a multipart body or without the field simply has no attachment.
func formAttachment(c echo.Context, field string) *usecase.Attachment {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}

	f, err := fh.Open()
	if err != nil {
		slog.WarnContext(
			c.Request().Context(), "failed to open uploaded file",
			slog.String("error", err.Error()),
			slog.String("module", "rest"),
		)
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.WarnContext(
			c.Request().Context(), "failed to read uploaded file",
			slog.String("error", err.Error()),
			slog.String("module", "rest"),
		)
		return nil
	}

	return &usecase.Attachment{Name: fh.Filename, Data: data}
}

// notify publishes a created-entity event, best effort.
func (h *Handler) notify(c echo.Context, kind string, body any) {
	if h.signal == nil {
		return
	}
	ctx := c.Request().Context()
	event := domain.Event{
		Kind:      kind,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}
	if err := h.signal.Publish(ctx, event); err != nil {
		slog.WarnContext(
			ctx, "event publish failed",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
			slog.String("module", "signal"),
		)
	}
}
