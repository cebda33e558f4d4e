package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Darkkkking/ai-rpg-adventure/internal/clients/openai"
	"github.com/Darkkkking/ai-rpg-adventure/internal/config"
	"github.com/Darkkkking/ai-rpg-adventure/internal/events"
	"github.com/Darkkkking/ai-rpg-adventure/internal/repositories/saves"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/narrative"
)

// app lazily builds the service provider the first time a command needs it
type app struct {
	cfg      *config.Config
	provider *services.Provider
	closers  []func()
}

func newApp(cfg *config.Config) *app {
	return &app{cfg: cfg}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "adventure",
		Short:         "Monster Hunters Guild",
		Long:          `Take contracts from the Monster Hunters Guild, fight the creatures they name, and grow your hunter. Lobbies let a party hunt together.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	root.AddCommand(newPlayCmd(a))
	root.AddCommand(newClassesCmd(a))
	root.AddCommand(newBestiaryCmd(a))
	root.AddCommand(newStatsCmd(a))
	root.AddCommand(newSavesCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newImportCmd(a))
	root.AddCommand(newClearCmd(a))
	root.AddCommand(newLobbyCmd(a))

	return root
}

func (a *app) setup(ctx context.Context) error {
	if a.provider != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	providerConfig := &services.ProviderConfig{
		EventBus:         events.NewBus(),
		NarrativeTimeout: a.cfg.Narrative.Timeout,
		SaveRepository:   a.openSaves(ctx),
		SaveSlot:         a.cfg.Storage.Slot,
	}

	if a.cfg.NarratorEnabled() {
		client, err := openai.New(&openai.Config{
			APIKey:  a.cfg.OpenAI.APIKey,
			BaseURL: a.cfg.OpenAI.BaseURL,
			Model:   a.cfg.OpenAI.Model,
			HTTPClient: &http.Client{
				Timeout: a.cfg.Narrative.Timeout,
			},
		})
		if err != nil {
			return err
		}
		providerConfig.NarrativeProvider = narrative.NewOpenAIProvider(client)
		log.Printf("Narrator: using %s at %s", a.cfg.OpenAI.Model, a.cfg.OpenAI.BaseURL)
	} else {
		log.Println("Narrator: no OPENAI_API_KEY, using built-in stories")
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		return err
	}
	subscribeLogging(provider.EventBus)

	a.provider = provider
	return nil
}

// openSaves picks the save backend. Redis failures fall back to memory so
// a game can still be played.
func (a *app) openSaves(ctx context.Context) saves.Repository {
	storage := a.cfg.Storage

	switch storage.Backend {
	case config.BackendFile:
		repo, err := saves.NewFileRepository(storage.SavePath)
		if err != nil {
			log.Printf("Failed to open save directory %s: %v", storage.SavePath, err)
			break
		}
		log.Printf("Saving games under %s", storage.SavePath)
		return repo

	case config.BackendSQLite:
		repo, err := saves.OpenSQLite(storage.SQLitePath)
		if err != nil {
			log.Printf("Failed to open SQLite at %s: %v", storage.SQLitePath, err)
			break
		}
		a.closers = append(a.closers, func() { _ = repo.Close() })
		log.Printf("Saving games to SQLite at %s", storage.SQLitePath)
		return repo

	case config.BackendRedis:
		log.Printf("Connecting to Redis at: %s", a.cfg.Redis.URL)
		opts, err := redis.ParseURL(a.cfg.Redis.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			break
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			log.Printf("Failed to connect to Redis: %v", err)
			break
		}

		a.closers = append(a.closers, func() { _ = client.Close() })
		log.Println("Using Redis for persistence")
		return saves.NewRedisRepository(&saves.RedisRepoConfig{
			Client: client,
			TTL:    a.cfg.Redis.TTL,
		})

	case config.BackendMemory:
		return saves.NewInMemoryRepository()
	}

	log.Println("Falling back to in-memory saves")
	return saves.NewInMemoryRepository()
}

// Close releases storage handles. Safe to call more than once.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func subscribeLogging(bus *events.Bus) {
	bus.Subscribe(events.EventTypeLevelUp, events.NewListenerFunc("cli-level-log", 100, func(e events.Event) error {
		if levelUp, ok := e.(*events.LevelUpEvent); ok {
			log.Printf("Guild: %s reached level %d", levelUp.Player, levelUp.NewLevel)
		}
		return nil
	}))
	bus.Subscribe(events.EventTypeSessionsExpired, events.NewListenerFunc("cli-expiry-log", 100, func(e events.Event) error {
		if expired, ok := e.(*events.SessionEvent); ok {
			log.Printf("Guild: swept %d expired lobbies", expired.Players)
		}
		return nil
	}))
}
