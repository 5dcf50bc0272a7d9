package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"posture-monitor/internal/domain/entity"
)

// Бэкенды модели позы
const (
	BackendGoCV = "gocv"
	BackendONNX = "onnx"
)

type Config struct {
	CameraDevice   string        // номер камеры или путь к видеофайлу
	PoseBackend    string        // gocv | onnx
	PoseModel      string        // путь к YOLOv8-pose .onnx
	PoseConfidence float32       // минимальная уверенность детекции человека
	OnnxRuntimeLib string        // путь к libonnxruntime, если пусто, по умолчанию
	HeadTopOffset  float64       // смещение макушки над носом, доля высоты кадра
	WindowTitle    string        // заголовок окна
	Headless       bool          // без окна, только HTTP
	HTTPAddr       string        // адрес HTTP-сервера, если пусто, выключен
	TelegramToken  string        // токен бота, если пусто, без уведомлений
	AlertAfter     time.Duration // сколько должна длиться плохая осанка до уведомления
	AlertCooldown  time.Duration // минимальный интервал между уведомлениями
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		CameraDevice:   getEnv("CAMERA_DEVICE", "0"),
		PoseBackend:    strings.ToLower(getEnv("POSE_BACKEND", BackendGoCV)),
		PoseModel:      getEnv("POSE_MODEL", "models/yolov8n-pose.onnx"),
		OnnxRuntimeLib: os.Getenv("ONNXRUNTIME_LIB"),
		WindowTitle:    getEnv("WINDOW_TITLE", "Posture Detection"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
	}

	var err error
	if cfg.PoseConfidence, err = getFloat32("POSE_CONFIDENCE", 0.5); err != nil {
		return nil, err
	}
	if cfg.HeadTopOffset, err = getFloat64("HEAD_TOP_OFFSET", entity.DefaultHeadTopOffset); err != nil {
		return nil, err
	}
	if cfg.Headless, err = getBool("HEADLESS", false); err != nil {
		return nil, err
	}
	if cfg.AlertAfter, err = getDuration("ALERT_AFTER", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.AlertCooldown, err = getDuration("ALERT_COOLDOWN", 5*time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.PoseBackend {
	case BackendGoCV, BackendONNX:
	default:
		return fmt.Errorf("unknown POSE_BACKEND %q, use %q or %q", c.PoseBackend, BackendGoCV, BackendONNX)
	}

	if c.PoseModel == "" {
		return fmt.Errorf("POSE_MODEL is required")
	}
	if c.PoseConfidence <= 0 || c.PoseConfidence >= 1 {
		return fmt.Errorf("POSE_CONFIDENCE must be in (0, 1), got %v", c.PoseConfidence)
	}
	if c.HeadTopOffset <= 0 || c.HeadTopOffset >= 1 {
		return fmt.Errorf("HEAD_TOP_OFFSET must be in (0, 1), got %v", c.HeadTopOffset)
	}
	if c.Headless && c.HTTPAddr == "" {
		return fmt.Errorf("HEADLESS requires HTTP_ADDR")
	}

	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getFloat64(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}

func getFloat32(key string, def float32) (float32, error) {
	f, err := getFloat64(key, float64(def))
	return float32(f), err
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
