package config

import (
	"fmt"
	"log"
	"time"

	"github.com/DesaiVishal-16/Longevix/models"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port       string `envconfig:"PORT" default:"3000"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"longevix"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	AIServiceURL string        `envconfig:"AI_SERVICE_URL" default:"http://localhost:8000"`
	AITimeout    time.Duration `envconfig:"AI_TIMEOUT" default:"10s"`
}

var (
	Env Config
	DB  *gorm.DB
)

func Init() {
	// .env is only present in local development
	_ = godotenv.Load()

	if err := envconfig.Process("", &Env); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		Env.DBHost,
		Env.DBUser,
		Env.DBPassword,
		Env.DBName,
		Env.DBPort,
	)

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
	// which the meal upsert and registration rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = db

	err = DB.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.FoodEntry{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
