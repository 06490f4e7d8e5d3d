package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
	"github.com/target/ticketdesk-api/internal/ports"
)

// NutritionServiceOptions groups dependencies for NutritionService.
type NutritionServiceOptions struct {
	Analyzer ports.NutritionAnalyzer // optional; requests fail when unset
}

// NutritionService validates image requests and forwards them to the analyzer.
type NutritionService struct {
	analyzer ports.NutritionAnalyzer
}

// NewNutritionService constructs a new NutritionService.
func NewNutritionService(opts NutritionServiceOptions) *NutritionService {
	return &NutritionService{analyzer: opts.Analyzer}
}

// Enabled reports whether an analyzer is configured.
func (s *NutritionService) Enabled() bool { return s.analyzer != nil }

// Analyze returns the nutrition facts for the foods in the request image.
// A data URL prefix (`data:image/png;base64,`) is stripped before forwarding.
func (s *NutritionService) Analyze(ctx context.Context, req model.ImageRequest) (model.NutritionResponse, error) {
	if s.analyzer == nil {
		return model.NutritionResponse{}, apperrors.Internal("nutrition analyzer not configured")
	}

	image := strings.TrimSpace(req.Image)
	if strings.HasPrefix(image, "data:") {
		if i := strings.Index(image, ","); i >= 0 {
			image = image[i+1:]
		}
	}
	if image == "" {
		return model.NutritionResponse{}, apperrors.ValidationField("image", "image is required")
	}

	resp, err := s.analyzer.Analyze(ctx, image)
	if err != nil {
		return model.NutritionResponse{}, fmt.Errorf("analyze image: %w", err)
	}
	if resp.Foods == nil {
		resp.Foods = []model.FoodItem{}
	}
	return resp, nil
}
