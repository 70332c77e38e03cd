package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"jewelshop/configs"
	httpAdapter "jewelshop/internal/adapters/input/http"
	telegramListener "jewelshop/internal/adapters/input/telegram"
	"jewelshop/internal/adapters/output/filesystem"
	"jewelshop/internal/adapters/output/memory"
	stoolapAdapter "jewelshop/internal/adapters/output/stoolap"
	telegramAdapter "jewelshop/internal/adapters/output/telegram"
	"jewelshop/internal/application"
	stoolapDriver "jewelshop/pkg/database_driver/stoolap"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	dbCon, err := stoolapDriver.Connect(configs.GetViper().Database.Path)
	if err != nil {
		return err
	}

	sessionTimeout := time.Duration(configs.GetViper().Session.TimeoutMinutes) * time.Minute

	// Wire up the hexagonal architecture layers
	// Output adapters (repository, media store, session store)
	productRepo := stoolapAdapter.NewProductRepository(dbCon.Conn)
	mediaStore, err := filesystem.NewMediaStore(configs.GetViper().Media.Dir)
	if err != nil {
		return err
	}
	sessionStore := memory.NewSessionStore(sessionTimeout)

	// Telegram bot shared by the inbound listener and the outbound client
	bot, err := tele.NewBot(tele.Settings{
		Token:  configs.GetViper().Telegram.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logrus.Fatalf("Failed to create Telegram bot: %v", err)
	}
	chatClient := telegramAdapter.NewChatClient(bot)

	// Application services (use cases)
	botSrv := application.NewBotService(chatClient, productRepo, sessionStore, mediaStore, sessionTimeout)
	catalogSrv := application.NewCatalogService(productRepo, chatClient, configs.GetViper().Telegram.AdminChatID)

	// Input adapters (HTTP handler, Telegram listener)
	hdl := httpAdapter.New(catalogSrv, dbCon.Conn)
	listener := telegramListener.NewListener(bot, botSrv)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			listener.Stop()
			stoolapDriver.Disconnect(dbCon.Conn)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	api := app.Group("/api")
	{
		api.Get("/products", hdl.ListProducts)
		api.Post("/checkout", hdl.Checkout)
	}

	// Storefront assets and uploaded product images
	app.Static("/", "./public")

	go listener.Start()
	logrus.Println("Telegram bot is polling ...")

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
