package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"quantumdb-backend/internal/config"
	infraCache "quantumdb-backend/internal/infrastructure/cache"
	"quantumdb-backend/internal/infrastructure/database"
	"quantumdb-backend/pkg/cache"

	"quantumdb-backend/internal/domains/author"
	authorRepo "quantumdb-backend/internal/domains/author/repository"
	authorService "quantumdb-backend/internal/domains/author/service"
	"quantumdb-backend/internal/domains/committee"
	committeeRepo "quantumdb-backend/internal/domains/committee/repository"
	committeeService "quantumdb-backend/internal/domains/committee/service"
	"quantumdb-backend/internal/domains/conference"
	conferenceRepo "quantumdb-backend/internal/domains/conference/repository"
	conferenceService "quantumdb-backend/internal/domains/conference/service"
	"quantumdb-backend/internal/domains/publication"
	publicationRepo "quantumdb-backend/internal/domains/publication/repository"
	publicationService "quantumdb-backend/internal/domains/publication/service"
	"quantumdb-backend/internal/domains/stats"
	statsRepo "quantumdb-backend/internal/domains/stats/repository"
	statsService "quantumdb-backend/internal/domains/stats/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the process lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	ConferenceRepo  conference.Repository
	AuthorRepo      author.Repository
	PublicationRepo publication.Repository
	CommitteeRepo   committee.Repository
	StatsRepo       stats.Repository

	ConferenceService  conference.Service
	AuthorService      author.Service
	PublicationService publication.Service
	CommitteeService   committee.Service
	StatsService       stats.Service
}

// NewContainer builds the whole graph in dependency order: config first,
// then infrastructure, then repositories, then services.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("Config loaded (environment: %s)", cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("Database connected")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	// Redis is a read-through cache for the stats layer; a failed
	// connection degrades to hitting the views directly.
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("Redis connected")
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ConferenceRepo = conferenceRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.PublicationRepo = publicationRepo.NewPostgresRepository(pool)
	c.CommitteeRepo = committeeRepo.NewPostgresRepository(pool)
	c.StatsRepo = statsRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.ConferenceService = conferenceService.NewConferenceService(c.ConferenceRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PublicationService = publicationService.NewPublicationService(c.PublicationRepo)
	c.CommitteeService = committeeService.NewCommitteeService(c.CommitteeRepo)
	c.StatsService = statsService.NewStatsService(c.StatsRepo, c.Cache, c.Config.Stats.CacheTTL)
}

// Cleanup releases connections during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("Failed to close Redis: %v", err)
		} else {
			log.Println("Redis connections closed")
		}
	}
}
