package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/target/ticketdesk-api/internal/domain/model"
)

const unknownFood = "Unknown Food"

// ErrNoJSON is returned when the generated text holds no JSON object.
var ErrNoJSON = errors.New("no valid JSON found in gemini response")

// unitSuffixes are stripped from string-valued numbers, longest first.
var unitSuffixes = []string{"kcal", "cal", "mg", "g"}

// ParseNutrition parses model output into a NutritionResponse. It accepts bare
// JSON, JSON inside markdown code fences, or JSON surrounded by prose. Missing
// numeric fields default to zero and missing names to "Unknown Food".
func ParseNutrition(text string) (model.NutritionResponse, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		extracted, ok := extractJSON(text)
		if !ok {
			return model.NutritionResponse{}, ErrNoJSON
		}
		if err = json.Unmarshal([]byte(extracted), &doc); err != nil {
			return model.NutritionResponse{}, fmt.Errorf("decode extracted json: %w", err)
		}
	}

	items, ok := doc["foods"].([]any)
	if !ok {
		return model.NutritionResponse{}, errors.New("no 'foods' array found in response")
	}

	out := model.NutritionResponse{Foods: make([]model.FoodItem, 0, len(items))}
	for _, item := range items {
		obj, isObj := item.(map[string]any)
		if !isObj {
			obj = map[string]any{}
		}
		out.Foods = append(out.Foods, parseFood(obj))
	}
	return out, nil
}

func parseFood(obj map[string]any) model.FoodItem {
	name, _ := obj["name"].(string)
	if name == "" {
		name = unknownFood
	}
	return model.FoodItem{
		Name:           name,
		Calories:       number(obj, "calories"),
		ProteinG:       number(obj, "protein_g", "protein"),
		FatG:           number(obj, "fat_g", "fat"),
		CarbohydratesG: number(obj, "carbohydrates_g", "carbohydrates", "carbs"),
		SugarG:         number(obj, "sugar_g", "sugar"),
		SodiumMg:       number(obj, "sodium_mg", "sodium"),
	}
}

// number returns the first key that holds a usable number, or zero.
func number(obj map[string]any, keys ...string) float32 {
	for _, k := range keys {
		if f, ok := toFloat(obj[k]); ok {
			return f
		}
	}
	return 0
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case string:
		s := strings.ToLower(strings.TrimSpace(n))
		for _, suffix := range unitSuffixes {
			if strings.HasSuffix(s, suffix) {
				s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
				break
			}
		}
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, false
		}
		return float32(f), true
	default:
		return 0, false
	}
}

// extractJSON finds a JSON object in fenced code blocks or between the first
// '{' and the last '}'.
func extractJSON(text string) (string, bool) {
	if start := strings.Index(text, "```json"); start >= 0 {
		rest := text[start+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end]), true
		}
	}

	if start := strings.Index(text, "```"); start >= 0 {
		rest := text[start+3:]
		if end := strings.Index(rest, "```"); end >= 0 {
			candidate := strings.TrimSpace(rest[:end])
			if strings.HasPrefix(candidate, "{") && strings.HasSuffix(candidate, "}") {
				return candidate, true
			}
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1], true
	}
	return "", false
}
