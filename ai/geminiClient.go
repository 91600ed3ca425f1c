// Package ai wraps the hosted generative model behind two request/response
// calls: description suggestion and issue categorization. The adapter holds
// no state, performs no retries, and surfaces every failure as ErrAdapter
// for the caller to show and let the user resubmit.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrAdapter marks a failed or unparseable model call.
var ErrAdapter = errors.New("ai adapter error")

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

type Config struct {
	APIKey  string
	Model   string // defaults to gemini-2.5-flash
	BaseURL string // overridable for tests
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{},
	}
}

type SuggestDescriptionInput struct {
	PhotoDataURI string `json:"photoDataUri" binding:"required"`
	LocationData string `json:"locationData" binding:"required"`
}

type SuggestDescriptionOutput struct {
	SuggestedDescription string `json:"suggestedDescription"`
}

// SuggestDescription asks the model for a short issue description based on
// the photo and location.
func (c *Client) SuggestDescription(ctx context.Context, input SuggestDescriptionInput) (SuggestDescriptionOutput, error) {
	prompt := fmt.Sprintf(`You are an AI assistant designed to help citizens quickly report issues to their local government.

Based on the provided image and location data, suggest a concise and informative description of the issue.

Here is the location data: %s

Please provide a description of the issue. Focus on the key details visible in the image and relevant to the location.
The description should be no more than 2 sentences long.
Do not include any introductory or concluding phrases. Just output the description.
Do not include any personally identifiable information in the suggested description.

Respond with a JSON object of the form {"suggestedDescription": "..."}.`, input.LocationData)

	var out SuggestDescriptionOutput
	if err := c.generate(ctx, prompt, input.PhotoDataURI, &out); err != nil {
		return SuggestDescriptionOutput{}, err
	}
	if out.SuggestedDescription == "" {
		return SuggestDescriptionOutput{}, fmt.Errorf("%w: model returned no description", ErrAdapter)
	}
	return out, nil
}

type CategorizeInput struct {
	PhotoDataURI string              `json:"photoDataUri" binding:"required"`
	Description  string              `json:"description" binding:"required"`
	Location     *CategorizeLocation `json:"location" binding:"required"`
}

// CategorizeLocation is the GPS position of the issue being categorized.
type CategorizeLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CategorizeOutput struct {
	Category            string  `json:"category"`
	SuggestedDepartment string  `json:"suggestedDepartment"`
	Confidence          float64 `json:"confidence"`
}

// Categorize asks the model for a category, a department suggestion, and a
// confidence score in [0,1]. The result is informational; the persisted
// category is the one the citizen selected.
func (c *Client) Categorize(ctx context.Context, input CategorizeInput) (CategorizeOutput, error) {
	if input.Location == nil {
		return CategorizeOutput{}, fmt.Errorf("%w: location is required", ErrAdapter)
	}

	prompt := fmt.Sprintf(`You are an AI assistant specializing in categorizing civic issues for a municipal government. Based on the description, photo, and GPS location of the issue, determine the most appropriate category and suggest the relevant department to handle it.

Description: %s
Location: Latitude: %f, Longitude: %f

Consider common issue categories such as potholes, graffiti, damaged street signs, water leaks, etc., and departments like Public Works, Sanitation, Transportation, etc.

Please categorize the issue and suggest a department. Also, provide a confidence score (0-1) for your categorization.

Respond with a JSON object of the form {"category": "...", "suggestedDepartment": "...", "confidence": 0.0}.`,
		input.Description, input.Location.Latitude, input.Location.Longitude)

	var out CategorizeOutput
	if err := c.generate(ctx, prompt, input.PhotoDataURI, &out); err != nil {
		return CategorizeOutput{}, err
	}
	if out.Category == "" || out.Confidence < 0 || out.Confidence > 1 {
		return CategorizeOutput{}, fmt.Errorf("%w: model returned an invalid categorization", ErrAdapter)
	}
	return out, nil
}

// generateContent wire types, trimmed to the fields this adapter uses.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt, photoDataURI string, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY is not configured", ErrAdapter)
	}

	mimeType, data, err := splitDataURI(photoDataURI)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAdapter, err)
	}

	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: data}},
				{Text: prompt},
			},
		}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAdapter, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAdapter, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAdapter, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: model call returned status %d", ErrAdapter, resp.StatusCode)
	}

	var generated generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return fmt.Errorf("%w: %v", ErrAdapter, err)
	}
	if len(generated.Candidates) == 0 || len(generated.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("%w: model returned no candidates", ErrAdapter)
	}

	text := generated.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: unparseable model output: %v", ErrAdapter, err)
	}
	return nil
}

// splitDataURI breaks a data:<mimetype>;base64,<data> URI into its parts.
func splitDataURI(uri string) (mimeType, data string, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", "", errors.New("photo must be a data URI")
	}
	meta, data, found := strings.Cut(uri[len("data:"):], ",")
	if !found || data == "" {
		return "", "", errors.New("malformed photo data URI")
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		return "", "", errors.New("photo data URI is missing a MIME type")
	}
	return mimeType, data, nil
}
