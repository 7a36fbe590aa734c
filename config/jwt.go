package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type JWTConfig struct {
	SecretKey       []byte
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

var (
	jwtConfig JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() JWTConfig {
	jwtOnce.Do(func() {
		LoadEnv()

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Fatal("JWT_SECRET environment variable is not set")
		}

		issuer := os.Getenv("JWT_ISSUER")
		if issuer == "" {
			issuer = "hris-ldp"
		}

		accessTTL := 24 * time.Hour
		if ttlStr := os.Getenv("JWT_ACCESS_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				accessTTL = parsed
			} else {
				log.Printf("invalid JWT_ACCESS_TTL value %q, using default %s", ttlStr, accessTTL)
			}
		}

		refreshTTL := 7 * 24 * time.Hour
		if ttlStr := os.Getenv("JWT_REFRESH_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				refreshTTL = parsed
			} else {
				log.Printf("invalid JWT_REFRESH_TTL value %q, using default %s", ttlStr, refreshTTL)
			}
		}

		jwtConfig = JWTConfig{
			SecretKey:       []byte(secret),
			Issuer:          issuer,
			AccessTokenTTL:  accessTTL,
			RefreshTokenTTL: refreshTTL,
		}
	})

	return jwtConfig
}
