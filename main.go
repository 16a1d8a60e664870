package main

import (
	"log"
	"time"

	"github.com/fypaccletsgo2025/EatooAdmin/config"
	httpapi "github.com/fypaccletsgo2025/EatooAdmin/internal/api/http"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/docstore"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/service"
	"github.com/fypaccletsgo2025/EatooAdmin/internal/storage"
)

func main() {
	config.LoadDotEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("admin-events")
	defer kafkaWriter.Close()

	store := docstore.NewPostgresStore(db)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb, 30*time.Second)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	notifier := service.NewNotifier(store)
	qr := service.ListingQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost")}

	admin := service.NewAdminService(store, cache, publisher, notifier, qr)
	handler := httpapi.NewHandler(admin)

	httpapi.StartServer(":"+config.Getenv("PORT", "4000"), httpapi.NewRouter(handler))
}
