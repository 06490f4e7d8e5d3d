package ports

import (
	"context"

	"github.com/target/ticketdesk-api/internal/domain/model"
)

// NutritionAnalyzer estimates nutrition facts for the foods in a base64-encoded image.
type NutritionAnalyzer interface {
	Analyze(ctx context.Context, base64Image string) (model.NutritionResponse, error)
}
