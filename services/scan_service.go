package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/daves-impact/MetaCal/catalog"
)

// maxScanFoods caps how many detected foods one photo may yield.
const maxScanFoods = 12

// ScanService talks to the external vision service that recognizes
// foods on a meal photo. The service is an opaque HTTP collaborator:
// it receives the image and returns detected-food records; everything
// about prompting and the model lives on its side.
type ScanService struct {
	client *http.Client
	url    string
	key    string
}

func NewScanService() *ScanService {
	return &ScanService{
		client: &http.Client{Timeout: 30 * time.Second},
		url:    os.Getenv("VISION_API_URL"),
		key:    os.Getenv("VISION_API_KEY"),
	}
}

// DetectedFood is one recognized food with estimated portion and
// macros, as reported by the vision service.
type DetectedFood struct {
	Name         string  `json:"name"`
	PortionLabel string  `json:"portion_label"`
	Grams        float64 `json:"grams"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Confidence   string  `json:"confidence"` // "high" | "medium" | "low"
}

// ScanResult is a detected food enriched with its closest catalog
// match, when one exists, so the client can offer reference-backed
// macros instead of the estimate.
type ScanResult struct {
	DetectedFood
	CatalogID      string             `json:"catalog_id,omitempty"`
	DataConfidence catalog.Confidence `json:"data_confidence"`
}

// AnalyzeImage sends the photo to the vision service and returns the
// normalized detection list.
func (s *ScanService) AnalyzeImage(imageBase64, mimeType string) ([]DetectedFood, error) {
	if s.url == "" {
		return nil, fmt.Errorf("VISION_API_URL not set")
	}
	if imageBase64 == "" {
		return nil, fmt.Errorf("image payload is empty")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	body, _ := json.Marshal(map[string]string{
		"image_base64": imageBase64,
		"mime_type":    mimeType,
	})

	req, err := http.NewRequest("POST", s.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.key != "" {
		req.Header.Set("Authorization", "Bearer "+s.key)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read vision response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("vision api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("vision api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Foods []DetectedFood `json:"foods"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("decode vision response error: %v | body: %s", err, preview)
	}

	return NormalizeDetected(out.Foods), nil
}

// NormalizeDetected cleans a raw detection list: unnamed entries are
// dropped, numeric fields are clamped non-negative (non-finite values
// become 0), confidence collapses to high/medium/low with medium as
// the default, portion labels default to "1 serving", and the list is
// capped. Pure, so a misbehaving vision response degrades to an empty
// or shorter list rather than an error.
func NormalizeDetected(raw []DetectedFood) []DetectedFood {
	out := make([]DetectedFood, 0, len(raw))
	for _, f := range raw {
		if len(out) >= maxScanFoods {
			break
		}
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		portion := strings.TrimSpace(f.PortionLabel)
		if portion == "" {
			portion = "1 serving"
		}
		out = append(out, DetectedFood{
			Name:         name,
			PortionLabel: portion,
			Grams:        clampFinite(f.Grams),
			Calories:     clampFinite(f.Calories),
			Protein:      clampFinite(f.Protein),
			Carbs:        clampFinite(f.Carbs),
			Fat:          clampFinite(f.Fat),
			Confidence:   normalizeConfidence(f.Confidence),
		})
	}
	return out
}

// MatchCatalog pairs detections with catalog foods by name so logged
// scans can carry a reference-backed data confidence. Unmatched foods
// keep the estimate and are tagged "none".
func MatchCatalog(foods []DetectedFood) []ScanResult {
	out := make([]ScanResult, 0, len(foods))
	for _, f := range foods {
		res := ScanResult{DetectedFood: f, DataConfidence: catalog.ConfidenceNone}
		if matches := catalog.Search(f.Name); len(matches) > 0 {
			res.CatalogID = matches[0].ID
			res.DataConfidence = matches[0].Confidence
		}
		out = append(out, res)
	}
	return out
}

func normalizeConfidence(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "high":
		return "high"
	case "low":
		return "low"
	default:
		return "medium"
	}
}

func clampFinite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
