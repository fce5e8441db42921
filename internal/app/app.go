package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/garage-ops/internal/config"
	"github.com/you-humble/garage-ops/internal/transport/http/health"
	"github.com/you-humble/garage-ops/platform/closer"
	"github.com/you-humble/garage-ops/platform/logger"
)

const startMsg = `👋 *Garage notifications are on.*

This chat will receive:
📦 low stock alerts
🧾 quotation and purchase order updates
🚗 new service appointments

Send /start again any time; you are only subscribed once.`

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initServer,
		a.initTelegramBot,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.Sync()
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		requestLogFields,
		middleware.Recoverer,
		middleware.Logger,
	)

	for prefix, h := range a.di.Handlers(ctx) {
		r.Route(prefix, h.Register)
	}

	r.HandleFunc("/health", health.HealthCheck)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	return nil
}

// requestLogFields tags every log line of a request with its id and route.
func requestLogFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithContextFields(r.Context(),
			logger.String("request_id", middleware.GetReqID(r.Context())),
			logger.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *app) initTelegramBot(ctx context.Context) error {
	if !config.C().Features.NotifierEnabled() {
		return nil
	}

	tgSvc := a.di.TelegramService(ctx)

	a.di.TelegramBot(ctx).RegisterHandler(
		bot.HandlerTypeMessageText,
		"/start",
		bot.MatchTypeExact,
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			logger.Info(ctx, "New user",
				logger.String("username", update.Message.From.Username),
				logger.Int64("chat_id", update.Message.Chat.ID),
			)

			_, err := b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:    update.Message.Chat.ID,
				Text:      startMsg,
				ParseMode: models.ParseModeMarkdownV1,
			})
			if err != nil {
				logger.Error(ctx, "Failed to send activation message", logger.ErrorF(err))
			}

			tgSvc.AddChatID(ctx, update.Message.Chat.ID)
		})

	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 garage server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		sdCtx, cancel := context.WithTimeout(
			context.WithoutCancel(egCtx),
			config.C().Server.ShutdownTimeout(),
		)
		defer cancel()

		return a.server.Shutdown(sdCtx)
	})

	if config.C().Features.NotifierEnabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 events consumer running",
				logger.String("topic", config.C().Kafka.EventsTopic()),
			)
			err := a.di.EventConsumer(egCtx).RunEventsConsume(egCtx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return nil
		})

		eg.Go(func() error {
			logger.Info(egCtx, "🤖 Telegram bot started...")
			a.di.TelegramBot(egCtx).Start(egCtx)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
