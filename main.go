package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tabunganku_backend/internals/configs"
	database "tabunganku_backend/internals/databases"
	helper "tabunganku_backend/internals/helpers"
	middlewares "tabunganku_backend/internals/middlewares"
	routes "tabunganku_backend/internals/route"
	seeds "tabunganku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	// Nominal uang dikirim sebagai angka JSON, bukan string
	decimal.MarshalJSONWithoutQuotes = true

	// Mode migrasi ringan: `./tabunganku_app migrate` → AutoMigrate lalu keluar
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		database.ConnectDB()
		database.MigrateAll()
		fmt.Println("migrasi selesai")
		return
	}

	// Mode seeding: `./tabunganku_app seed` → isi data contoh lalu keluar
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		database.ConnectDB()
		database.MigrateAll()
		seeds.RunAllSeeds(database.DB)
		fmt.Println("seeding selesai")
		return
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		// semua *fiber.Error dibungkus envelope JSON yang sama dengan response sukses
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.MigrateAll()
	database.WarmUpQueries()

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
