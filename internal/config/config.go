package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// DefaultDatasetURL is the freeCodeCamp global temperature dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"

// MaxDatasetBytes caps DATASET_MAX_BYTES.
const MaxDatasetBytes = 1 << 30

// Margins are the insets between the canvas edge and the drawing area, in
// logical pixels.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Config holds all run settings, populated from environment variables.
type Config struct {
	DatasetURL      string
	DatasetTimeout  time.Duration
	DatasetMaxBytes int64
	OutputPath      string
	LogLevel        string
	LogFormat       string

	// Canvas geometry.
	CanvasWidth  int
	CanvasHeight int
	Margins      Margins

	// MetricsTextfile, when set, receives a Prometheus text exposition of the
	// run's metrics for the node exporter textfile collector.
	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults where unset.
// A .env file in the working directory is read first if present; variables
// already set in the environment take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	timeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("DATASET_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid DATASET_TIMEOUT")
	}

	maxBytes, err := strconv.ParseInt(sharedcfg.EnvOrDefault("DATASET_MAX_BYTES", "8388608"), 10, 64)
	if err != nil || maxBytes <= 0 || maxBytes > MaxDatasetBytes {
		return nil, fmt.Errorf("invalid DATASET_MAX_BYTES: must be between 1 and %d", MaxDatasetBytes)
	}

	width, err := parsePositiveInt("CANVAS_WIDTH", 800)
	if err != nil {
		return nil, err
	}
	height, err := parsePositiveInt("CANVAS_HEIGHT", 400)
	if err != nil {
		return nil, err
	}

	margins, err := parseMargins(sharedcfg.EnvOrDefault("CANVAS_MARGINS", "20,20,20,60"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatasetURL:      sharedcfg.EnvOrDefault("DATASET_URL", DefaultDatasetURL),
		DatasetTimeout:  timeout,
		DatasetMaxBytes: maxBytes,
		OutputPath:      sharedcfg.EnvOrDefault("OUTPUT_PATH", "heatmap.html"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		CanvasWidth:     width,
		CanvasHeight:    height,
		Margins:         margins,
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints. It is re-run after command-line
// overrides are applied.
func (c *Config) Validate() error {
	if c.DatasetURL == "" {
		return errors.New("DATASET_URL is required")
	}
	if c.OutputPath == "" {
		return errors.New("OUTPUT_PATH is required")
	}
	if c.InnerWidth() <= 0 {
		return errors.New("CANVAS_MARGINS leave no horizontal drawing area within CANVAS_WIDTH")
	}
	if c.InnerHeight() <= 0 {
		return errors.New("CANVAS_MARGINS leave no vertical drawing area within CANVAS_HEIGHT")
	}
	return nil
}

// InnerWidth is the drawing area width.
func (c *Config) InnerWidth() int { return c.CanvasWidth - c.Margins.Left - c.Margins.Right }

// InnerHeight is the drawing area height.
func (c *Config) InnerHeight() int { return c.CanvasHeight - c.Margins.Top - c.Margins.Bottom }

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

// parseMargins reads "top,right,bottom,left" in CSS order.
func parseMargins(s string) (Margins, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Margins{}, errors.New("invalid CANVAS_MARGINS: want top,right,bottom,left")
	}
	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return Margins{}, fmt.Errorf("invalid CANVAS_MARGINS value %q", p)
		}
		vals[i] = n
	}
	return Margins{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
}
