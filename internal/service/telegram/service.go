package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/platform/logger"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type MessageBuilder interface {
	BuildMessage(event model.Event) (string, error)
}

type service struct {
	client  MessageSender
	builder MessageBuilder
	mu      sync.RWMutex
	chats   map[int64]struct{}
}

func NewTelegramService(client MessageSender, builder MessageBuilder) *service {
	return &service{client: client, builder: builder, chats: map[int64]struct{}{}}
}

// Notify sends the rendered event to every registered chat. A failed chat
// does not stop delivery to the others.
func (svc *service) Notify(ctx context.Context, event model.Event) error {
	const op = "telegram.service.Notify"

	msg, err := svc.builder.BuildMessage(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var errs []error
	for _, chatID := range svc.chatIDs() {
		if err := svc.client.SendMessage(ctx, chatID, msg); err != nil {
			logger.Warn(ctx, "send message", logger.Int64("chat_id", chatID), logger.ErrorF(err))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) AddChatID(ctx context.Context, chatID int64) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, ok := svc.chats[chatID]; !ok {
		logger.Info(ctx, "chat subscribed", logger.Int64("chat_id", chatID))
	}
	svc.chats[chatID] = struct{}{}
}

func (svc *service) chatIDs() []int64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	out := make([]int64, 0, len(svc.chats))
	for id := range svc.chats {
		out = append(out, id)
	}
	return out
}
