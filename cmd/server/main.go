package main

import (
	"context"
	"log"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/editor"
	"resume-builder/internal/infrastructure/migration"
	mid "resume-builder/internal/middleware"
	"resume-builder/internal/preview"
	"resume-builder/internal/sessions"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// infra setup
	pool, err := infra.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("database not available: %v", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	sessionRepo := sessions.NewRedisRepository(redisClient, "")

	previewRenderer, err := preview.NewRenderer(cfg.Template.Dir)
	if err != nil {
		log.Fatalf("preview template: %v", err)
	}

	experienceRepo := repo.NewExperienceRepo(pool)
	educationRepo := repo.NewEducationRepo(pool)
	projectRepo := repo.NewProjectRepo(pool)
	skillRepo := repo.NewSkillRepo(pool)
	userRepo := repo.NewUserRepo(pool)
	loader := usecase.NewLoader(experienceRepo, educationRepo, projectRepo, skillRepo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
	app.Use(mid.Authenticate(cfg.JWT.Secret, sessionRepo))

	h := httpadapter.NewHandler(httpadapter.Deps{
		Experiences: experienceRepo,
		Education:   educationRepo,
		Projects:    projectRepo,
		Skills:      skillRepo,
		Users:       userRepo,
		Loader:      loader,
		Editors:     editor.NewStore(),
		Preview:     previewRenderer,
		PDF:         infra.NewChromedpRenderer(cfg.Template.Dir),
		Sessions:    sessionRepo,
		SessionTTL:  cfg.JWT.SessionTTL,
	})
	h.Register(app)

	if err := app.Listen(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
