package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Temple identity printed on receipts and tickets.
var (
	TempleName       = "Sri Parvati Jadala Ramalingeshwara Swamy Devastanam"
	TempleNameTelugu = "శ్రీ పార్వతీ జడల రామలింగేశ్వర స్వామి దేవస్థానం"
	TempleAddress    = "Cheruvugattu, Nalgonda, Telangana"
	TemplePAN        = "AAAXX0000X"
	TempleRegNo      = "TE/END/REG/XXXX"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret   string
	JWTTTLHours int

	// Redis Config (visitor counters + rate limiter store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Kafka Config (booking/donation event stream)
	KafkaBrokers string
	KafkaTopic   string

	CORSOrigins string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	ttl, _ := strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
	if ttl <= 0 {
		ttl = 24
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "temple-secret-key-2025"
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "temple-events"
	}

	return &Config{
		Port: os.Getenv("PORT"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret:   secret,
		JWTTTLHours: ttl,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   topic,

		CORSOrigins: os.Getenv("CORS_ORIGINS"),
	}
}
