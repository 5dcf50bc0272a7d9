package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"posture-monitor/config"
	"posture-monitor/internal/api/stream"
	telegram "posture-monitor/internal/api/telegram"
	"posture-monitor/internal/container"
	"posture-monitor/internal/domain/port"
	"posture-monitor/internal/infrastructure/onnx"
	"posture-monitor/internal/infrastructure/pose"
	"posture-monitor/internal/infrastructure/storage"
	"posture-monitor/internal/infrastructure/vision"
)

// flags переопределяют значения из окружения, если заданы явно
type flags struct {
	device   string
	backend  string
	model    string
	headless bool
	httpAddr string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "posture-monitor",
		Short:         "Real-time posture monitoring from a webcam",
		Long:          `Captures frames from a camera, estimates body pose, classifies posture by head and leg angles and draws the result over the video. Press q in the window to quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runMonitor(cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&f.device, "device", "d", "", "Camera index or video file (CAMERA_DEVICE)")
	cmd.PersistentFlags().StringVarP(&f.backend, "backend", "b", "", "Pose backend: gocv or onnx (POSE_BACKEND)")
	cmd.PersistentFlags().StringVarP(&f.model, "model", "m", "", "YOLOv8-pose ONNX model (POSE_MODEL)")
	cmd.Flags().BoolVar(&f.headless, "headless", false, "Run without a window (HEADLESS)")
	cmd.Flags().StringVar(&f.httpAddr, "http", "", "HTTP address for status and MJPEG stream (HTTP_ADDR)")

	cmd.AddCommand(newClassifyCmd(f))

	return cmd
}

func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("device") {
		cfg.CameraDevice = f.device
	}
	if cmd.Flags().Changed("backend") {
		cfg.PoseBackend = f.backend
	}
	if cmd.Flags().Changed("model") {
		cfg.PoseModel = f.model
	}
	if cmd.Flags().Changed("headless") {
		cfg.Headless = f.headless
	}
	if cmd.Flags().Changed("http") {
		cfg.HTTPAddr = f.httpAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEstimator загружает модель позы выбранного бэкенда
func newEstimator(cfg *config.Config) (port.PoseEstimator, error) {
	params := pose.YOLOv8COCOParams()
	params.BoxThreshold = cfg.PoseConfidence

	switch cfg.PoseBackend {
	case config.BackendONNX:
		return onnx.NewEstimator(cfg.OnnxRuntimeLib, cfg.PoseModel, params)
	default:
		return vision.NewDNNEstimator(cfg.PoseModel, params)
	}
}

func runMonitor(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Собираем сервисы приложения
	c := container.New(storage.NewMemorySubscriberRepository(), cfg.HeadTopOffset)

	var notifier port.Notifier
	var bot *telegram.Bot
	if cfg.TelegramToken != "" {
		var err error
		bot, err = telegram.NewBot(cfg.TelegramToken, c.Subscriptions)
		if err != nil {
			return fmt.Errorf("create telegram bot: %w", err)
		}
		notifier = bot
	}

	session := c.StartSession(notifier, cfg.AlertAfter, cfg.AlertCooldown)

	if bot != nil {
		bot.Stats = session
		go func() {
			if err := bot.Run(ctx); err != nil {
				log.Printf("Telegram bot error: %v", err)
			}
		}()
	}

	// Модель создаётся один раз и живёт до выхода
	estimator, err := newEstimator(cfg)
	if err != nil {
		return fmt.Errorf("load pose model: %w", err)
	}
	defer estimator.Close()

	var presenters []port.Presenter
	if !cfg.Headless {
		window := vision.NewWindow(cfg.WindowTitle)
		defer window.Close()
		presenters = append(presenters, window)
	}
	if cfg.HTTPAddr != "" {
		server := stream.NewServer(session)
		go func() {
			if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil {
				log.Printf("HTTP server error: %v", err)
			}
		}()
		presenters = append(presenters, server)
	}

	// Камеру закрывает сам Monitor при выходе из цикла
	camera, err := vision.OpenCamera(cfg.CameraDevice)
	if err != nil {
		return fmt.Errorf("open camera: %w", err)
	}

	log.Printf("Monitoring posture from %q with %s backend", cfg.CameraDevice, cfg.PoseBackend)
	monitor := c.NewMonitor(camera, estimator, vision.NewOverlay(), presenters...)
	if err := monitor.Run(ctx); err != nil {
		return err
	}

	stats := session.Snapshot()
	log.Printf("Session finished: %d frames, %d with a person, %d good, %d bad",
		stats.Frames, stats.Detected, stats.GoodFrames, stats.BadFrames)
	return nil
}
