package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"tokbot/internal/adapters/catalog"
	"tokbot/internal/adapters/fetcher"
	"tokbot/internal/adapters/handler"
	"tokbot/internal/adapters/sender"
	"tokbot/internal/core/domain"
	"tokbot/internal/core/domain/commands"
	"tokbot/internal/core/port"
	"tokbot/internal/core/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting tokbot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	viper.SetDefault("bot.privileged_role", string(domain.RoleKing))
	viper.SetDefault("bot.keepalive_interval", "168h")
	viper.SetDefault("cooldown.download", 5)
	viper.SetDefault("cooldown.r", 5)
	viper.SetDefault("cooldown.ru", 5)

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	catalogStore, err := catalog.NewPostgres(viper.GetString("database.dsn"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed connecting to catalog database")
	}

	videoFetcher, err := fetcher.NewYTDLP()
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing video fetcher")
	}

	token := viper.GetString("telegram.bot_token")
	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegram(b)

	tasks := service.NewTaskSet()
	limiter := service.NewCooldownLimiter()
	resolver := service.NewResolver(catalogStore)
	deliverer := service.NewDeliverer(videoFetcher, s, s)

	registration := service.Registration(catalogStore, tasks)
	requireRole := service.RequireRole(catalogStore, s,
		domain.Role(viper.GetString("bot.privileged_role")))
	cooldownFor := func(name string) port.Guard {
		seconds := viper.GetInt("cooldown." + name)
		return service.Cooldown(limiter, s, time.Duration(seconds)*time.Second)
	}

	// Guard order per command is fixed here: registration, then
	// authorization, then cooldown.
	registry := &service.Registry{}
	registry.Register(commands.NewHelloHandler(s, "/hello"), registration)
	registry.Register(commands.NewStartHandler(s, "/start"), registration)
	registry.Register(commands.NewChatIDHandler(s, "/chatid"), registration)
	registry.Register(commands.NewDownloadHandler(resolver, deliverer, s, "/download"),
		registration, cooldownFor("download"))
	registry.Register(commands.NewRandomHandler(resolver, deliverer, s, "/r"),
		registration, cooldownFor("r"))
	registry.Register(commands.NewSourceRandomHandler(resolver, deliverer, s, "/ru"),
		registration, cooldownFor("ru"))
	registry.Register(commands.NewDeleteHandler(resolver, catalogStore, tasks, s, "/d"),
		registration, requireRole)
	registry.Register(commands.NewInactivateHandler(resolver, catalogStore, tasks, s, "/i"),
		registration, requireRole)
	registry.Register(commands.NewAddSourceHandler(catalogStore, s, "/add"),
		registration, requireRole)
	registry.Register(commands.NewBroadcastHandler(catalogStore, s, "/send"),
		registration, requireRole)

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timeout for handler in config")
	}

	commandHandler := handler.NewCommand(registry, s, handlerTimeout)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, commandHandler.Handle)
	b.RegisterHandler(bot.HandlerTypePhotoCaption, "/", bot.MatchTypePrefix, commandHandler.Handle)

	if keepaliveChatID := viper.GetInt64("bot.keepalive_chat_id"); keepaliveChatID != 0 {
		interval, err := time.ParseDuration(viper.GetString("bot.keepalive_interval"))
		if err != nil {
			log.Fatal().Err(err).Msg("invalid keepalive interval in config")
		}

		go service.NewKeepalive(s, keepaliveChatID, interval).Run(ctx)
	}

	log.Info().Msg("bot listening")
	b.Start(ctx)

	tasks.Wait()
	log.Info().Msg("tokbot stopped")
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
