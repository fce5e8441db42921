package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/service/mocks"
)

func TestNotify(t *testing.T) {
	t.Parallel()

	event := model.NewEvent(model.EventAppointmentBooked, "a-1", nil)

	t.Run("sends to every subscribed chat", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)
		builder := mocks.NewMockMessageBuilder(t)
		builder.On("BuildMessage", event).Return("hello", nil).Once()
		sender.On("SendMessage", mock.Anything, int64(1), "hello").Return(nil).Once()
		sender.On("SendMessage", mock.Anything, int64(2), "hello").Return(nil).Once()

		svc := NewTelegramService(sender, builder)
		svc.AddChatID(context.Background(), 1)
		svc.AddChatID(context.Background(), 2)
		svc.AddChatID(context.Background(), 2)

		require.NoError(t, svc.Notify(context.Background(), event))
	})

	t.Run("failed chat does not stop the others", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)
		builder := mocks.NewMockMessageBuilder(t)
		builder.On("BuildMessage", event).Return("hello", nil).Once()
		sender.On("SendMessage", mock.Anything, int64(1), "hello").Return(errors.New("blocked")).Once()
		sender.On("SendMessage", mock.Anything, int64(2), "hello").Return(nil).Once()

		svc := NewTelegramService(sender, builder)
		svc.AddChatID(context.Background(), 1)
		svc.AddChatID(context.Background(), 2)

		err := svc.Notify(context.Background(), event)
		require.Error(t, err)
		assert.ErrorContains(t, err, "blocked")
	})

	t.Run("unknown event type", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)
		builder := mocks.NewMockMessageBuilder(t)
		builder.On("BuildMessage", mock.Anything).Return("", model.ErrUnknownEventType).Once()

		svc := NewTelegramService(sender, builder)
		svc.AddChatID(context.Background(), 1)

		err := svc.Notify(context.Background(), model.Event{Type: "x"})
		require.ErrorIs(t, err, model.ErrUnknownEventType)

		sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no chats is not an error", func(t *testing.T) {
		t.Parallel()

		builder := mocks.NewMockMessageBuilder(t)
		builder.On("BuildMessage", event).Return("hello", nil).Once()

		svc := NewTelegramService(mocks.NewMockMessageSender(t), builder)
		require.NoError(t, svc.Notify(context.Background(), event))
	})
}
