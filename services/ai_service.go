package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// AIService talks to the out-of-process nutrient-generation service. Calls
// are best-effort: a single attempt, and every failure is replaced with a
// fixed fallback payload so the app keeps working while the model is down.
// Results carry Degraded so callers can tell fallback data apart from real
// answers instead of silently trusting zeroed nutrition.
type AIService struct {
	client *resty.Client
	log    zerolog.Logger
}

func NewAIService(baseURL string, timeout time.Duration, log zerolog.Logger) *AIService {
	return &AIService{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		log:    log,
	}
}

type ChatResult struct {
	Response string `json:"response"`
	Degraded bool   `json:"degraded"`
}

// FoodRef and GenerateNutrientsRequest mirror the collaborator's contract.
type FoodRef struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type GenerateNutrientsRequest struct {
	Food            []FoodRef `json:"food"`
	Time            string    `json:"time"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	Role            string    `json:"role"`
}

type NutrientTotals struct {
	Calories       float64            `json:"calories"`
	Fat            float64            `json:"fat"`
	Protein        float64            `json:"protein"`
	Carbohydrates  float64            `json:"carbohydrates"`
	Micronutrients map[string]float64 `json:"micronutrients"`
}

type ItemNutrients struct {
	Name           string             `json:"name"`
	Quantity       float64            `json:"quantity"`
	Unit           string             `json:"unit"`
	Calories       float64            `json:"calories"`
	Fat            float64            `json:"fat"`
	Protein        float64            `json:"protein"`
	Carbohydrates  float64            `json:"carbohydrates"`
	Micronutrients map[string]float64 `json:"micronutrients"`
}

type NutrientsResult struct {
	Total    NutrientTotals  `json:"total"`
	Items    []ItemNutrients `json:"items"`
	Degraded bool            `json:"degraded"`
}

func (s *AIService) Chat(ctx context.Context, message string) ChatResult {
	var out struct {
		Response string `json:"response"`
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"message": message}).
		SetResult(&out).
		Post("/chat")
	if err != nil || resp.IsError() {
		s.logFailure("chat", resp, err)
		return ChatResult{
			Response: fmt.Sprintf("This is a fallback response to your question: %s", message),
			Degraded: true,
		}
	}
	return ChatResult{Response: out.Response}
}

func (s *AIService) GenerateNutrients(ctx context.Context, req GenerateNutrientsRequest) NutrientsResult {
	var out struct {
		Total NutrientTotals  `json:"total"`
		Items []ItemNutrients `json:"items"`
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/generate-nutrients")
	if err != nil || resp.IsError() {
		s.logFailure("generate-nutrients", resp, err)
		return NutrientsResult{
			Total:    NutrientTotals{Micronutrients: map[string]float64{}},
			Items:    []ItemNutrients{},
			Degraded: true,
		}
	}

	if out.Total.Micronutrients == nil {
		out.Total.Micronutrients = map[string]float64{}
	}
	if out.Items == nil {
		out.Items = []ItemNutrients{}
	}
	return NutrientsResult{Total: out.Total, Items: out.Items}
}

func (s *AIService) logFailure(endpoint string, resp *resty.Response, err error) {
	ev := s.log.Warn().Str("endpoint", endpoint)
	if err != nil {
		ev = ev.Err(err)
	} else if resp != nil {
		ev = ev.Int("status", resp.StatusCode())
	}
	ev.Msg("AI service call failed, serving fallback")
}
