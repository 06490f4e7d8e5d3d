//revive:disable-next-line:var-naming // legacy package name used across the project
package model

// ImageRequest carries a base64-encoded image to analyze.
type ImageRequest struct {
	Image string `json:"image"`
}

// FoodItem is a single food identified in an image.
type FoodItem struct {
	Name           string  `json:"name"`
	Calories       float32 `json:"calories"`
	ProteinG       float32 `json:"protein_g"`
	FatG           float32 `json:"fat_g"`
	CarbohydratesG float32 `json:"carbohydrates_g"`
	SugarG         float32 `json:"sugar_g"`
	SodiumMg       float32 `json:"sodium_mg"`
}

// NutritionResponse is the analysis result returned to clients.
type NutritionResponse struct {
	Foods []FoodItem `json:"foods"`
}
