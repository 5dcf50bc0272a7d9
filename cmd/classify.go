package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"posture-monitor/config"
	app "posture-monitor/internal/application"
	"posture-monitor/internal/domain/entity"
	"posture-monitor/internal/domain/port"
	"posture-monitor/internal/infrastructure/imagefile"
	"posture-monitor/internal/infrastructure/vision"
)

// classifyOutput результат классификации снимка
type classifyOutput struct {
	Image     string               `json:"image"`
	Detected  bool                 `json:"detected"`
	Status    entity.PostureStatus `json:"status,omitempty"`
	HeadAngle *float64             `json:"head_angle,omitempty"`
	LegAngle  *float64             `json:"leg_angle,omitempty"`
}

func newClassifyCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <image>",
		Short: "Classify posture on a single image",
		Long:  `Runs pose estimation on one still image and prints the posture assessment as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runClassify(cmd.Context(), cfg, args[0])
		},
	}
}

func runClassify(ctx context.Context, cfg *config.Config, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	frame, err := openStill(cfg, path)
	if err != nil {
		return err
	}
	defer frame.Close()

	estimator, err := newEstimator(cfg)
	if err != nil {
		return fmt.Errorf("load pose model: %w", err)
	}
	defer estimator.Close()

	landmarks, err := estimator.Estimate(ctx, frame)
	if err != nil {
		return fmt.Errorf("estimate pose: %w", err)
	}

	out := classifyOutput{Image: path}
	if landmarks != nil {
		a := app.NewPostureClassifier(cfg.HeadTopOffset).Classify(landmarks, frame.Width(), frame.Height())
		out.Detected = true
		out.Status = a.Status
		out.HeadAngle = definedAngle(a.Angles.Head)
		out.LegAngle = definedAngle(a.Angles.Leg)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// openStill читает снимок средствами выбранного бэкенда
func openStill(cfg *config.Config, path string) (port.Frame, error) {
	if cfg.PoseBackend == config.BackendONNX {
		return imagefile.Open(path)
	}
	return vision.ReadImage(path)
}

func definedAngle(v float64) *float64 {
	if entity.IsUndefinedAngle(v) {
		return nil
	}
	return &v
}
