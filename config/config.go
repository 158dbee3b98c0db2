package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"skribbl/models"
)

// BotConfig is everything the bot needs to join a room, read from the
// environment (godotenv loads .env in main).
type BotConfig struct {
	Name      string
	Avatar    models.Avatar
	AccessKey string
	JoinCode  string
	Language  models.Language

	// StatusPort is where the local status API listens.
	StatusPort string
}

// Load reads the bot configuration, falling back to defaults for anything
// unset.
func Load() (*BotConfig, error) {
	cfg := &BotConfig{
		Name:      os.Getenv("SKRIBBL_NAME"),
		AccessKey: os.Getenv("SKRIBBL_KEY"),
		JoinCode:  os.Getenv("SKRIBBL_JOIN_CODE"),
		Language:  models.DefaultLanguage,
		Avatar:    models.NewAvatar(models.ColourRed, models.EyeAnnoyed, models.MouthKiller),
	}

	if cfg.Name == "" {
		cfg.Name = "gobot"
		log.Println("SKRIBBL_NAME not set, using default name")
	}

	if raw := os.Getenv("SKRIBBL_AVATAR"); raw != "" {
		avatar, err := parseAvatar(raw)
		if err != nil {
			return nil, fmt.Errorf("SKRIBBL_AVATAR: %w", err)
		}
		cfg.Avatar = avatar
	}

	if raw := os.Getenv("SKRIBBL_LANGUAGE"); raw != "" {
		language, err := models.ParseLanguage(raw)
		if err != nil {
			return nil, fmt.Errorf("SKRIBBL_LANGUAGE: %w", err)
		}
		cfg.Language = language
	}

	cfg.StatusPort = os.Getenv("PORT")
	if cfg.StatusPort == "" {
		cfg.StatusPort = "8080"
	}

	return cfg, nil
}

// parseAvatar reads "colour,eye,mouth,hat" (hat optional, -1 = none).
func parseAvatar(raw string) (models.Avatar, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return models.Avatar{}, fmt.Errorf("expected 3 or 4 comma-separated codes, got %q", raw)
	}
	codes := [4]int{0, 0, 0, int(models.HatNone)}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return models.Avatar{}, fmt.Errorf("bad avatar code %q: %w", part, err)
		}
		codes[i] = v
	}
	return models.AvatarFromRaw(codes)
}
