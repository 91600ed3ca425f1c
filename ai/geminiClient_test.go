package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testPhoto = "data:image/jpeg;base64,dGVzdA=="

// modelServer fakes the generateContent endpoint, replying with the given
// text as the single candidate part.
func modelServer(t *testing.T, replyText string, capture *generateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("request is missing the api key")
		}
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("undecodable request body: %v", err)
			}
		}
		text, _ := json.Marshal(replyText)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + string(text) + `}]}}]}`))
	}))
}

func testClient(serverURL string) *Client {
	return New(Config{APIKey: "test-key", BaseURL: serverURL})
}

func TestSuggestDescription(t *testing.T) {
	var captured generateRequest
	server := modelServer(t, `{"suggestedDescription":"A cracked sidewalk slab near the bus stop."}`, &captured)
	defer server.Close()

	out, err := testClient(server.URL).SuggestDescription(context.Background(), SuggestDescriptionInput{
		PhotoDataURI: testPhoto,
		LocationData: "Lat: 40.71, Lon: -74.00",
	})
	if err != nil {
		t.Fatalf("SuggestDescription returned error: %v", err)
	}
	if out.SuggestedDescription != "A cracked sidewalk slab near the bus stop." {
		t.Errorf("unexpected suggestion: %q", out.SuggestedDescription)
	}

	if len(captured.Contents) != 1 || len(captured.Contents[0].Parts) != 2 {
		t.Fatalf("request should carry one image part and one text part: %+v", captured)
	}
	img := captured.Contents[0].Parts[0].InlineData
	if img == nil || img.MimeType != "image/jpeg" || img.Data != "dGVzdA==" {
		t.Errorf("photo not forwarded as inline data: %+v", img)
	}
	if !strings.Contains(captured.Contents[0].Parts[1].Text, "Lat: 40.71, Lon: -74.00") {
		t.Error("location data missing from the prompt")
	}
	if captured.GenerationConfig == nil || captured.GenerationConfig.ResponseMimeType != "application/json" {
		t.Error("request should ask for a JSON response")
	}
}

func TestSuggestDescriptionEmptyReply(t *testing.T) {
	server := modelServer(t, `{"suggestedDescription":""}`, nil)
	defer server.Close()

	_, err := testClient(server.URL).SuggestDescription(context.Background(), SuggestDescriptionInput{
		PhotoDataURI: testPhoto,
		LocationData: "somewhere",
	})
	if !errors.Is(err, ErrAdapter) {
		t.Errorf("expected ErrAdapter, got %v", err)
	}
}

func TestCategorize(t *testing.T) {
	var captured generateRequest
	server := modelServer(t, `{"category":"Pothole","suggestedDepartment":"Public Works","confidence":0.92}`, &captured)
	defer server.Close()

	out, err := testClient(server.URL).Categorize(context.Background(), CategorizeInput{
		PhotoDataURI: testPhoto,
		Description:  "Deep pothole in the bike lane.",
		Location:     &CategorizeLocation{Latitude: 40.71, Longitude: -74.0},
	})
	if err != nil {
		t.Fatalf("Categorize returned error: %v", err)
	}
	if out.Category != "Pothole" || out.SuggestedDepartment != "Public Works" || out.Confidence != 0.92 {
		t.Errorf("unexpected categorization: %+v", out)
	}

	prompt := captured.Contents[0].Parts[1].Text
	if !strings.Contains(prompt, "Latitude: 40.710000") || !strings.Contains(prompt, "Longitude: -74.000000") {
		t.Errorf("coordinates missing from the prompt: %q", prompt)
	}
}

func TestCategorizeMissingLocation(t *testing.T) {
	server := modelServer(t, `{"category":"Pothole","suggestedDepartment":"Public Works","confidence":0.92}`, nil)
	defer server.Close()

	_, err := testClient(server.URL).Categorize(context.Background(), CategorizeInput{
		PhotoDataURI: testPhoto,
		Description:  "Deep pothole in the bike lane.",
	})
	if !errors.Is(err, ErrAdapter) {
		t.Errorf("expected ErrAdapter for a missing location, got %v", err)
	}
}

func TestCategorizeRejectsOutOfRangeConfidence(t *testing.T) {
	server := modelServer(t, `{"category":"Pothole","suggestedDepartment":"Public Works","confidence":1.7}`, nil)
	defer server.Close()

	_, err := testClient(server.URL).Categorize(context.Background(), CategorizeInput{
		PhotoDataURI: testPhoto,
		Description:  "Deep pothole in the bike lane.",
		Location:     &CategorizeLocation{Latitude: 40.71, Longitude: -74.0},
	})
	if !errors.Is(err, ErrAdapter) {
		t.Errorf("expected ErrAdapter, got %v", err)
	}
}

func TestGenerateUnparseableModelOutput(t *testing.T) {
	server := modelServer(t, `here is your category: Pothole`, nil)
	defer server.Close()

	_, err := testClient(server.URL).Categorize(context.Background(), CategorizeInput{
		PhotoDataURI: testPhoto,
		Description:  "Deep pothole in the bike lane.",
		Location:     &CategorizeLocation{Latitude: 40.71, Longitude: -74.0},
	})
	if !errors.Is(err, ErrAdapter) {
		t.Errorf("expected ErrAdapter for non-JSON model text, got %v", err)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server.URL).SuggestDescription(context.Background(), SuggestDescriptionInput{
		PhotoDataURI: testPhoto,
		LocationData: "somewhere",
	})
	if !errors.Is(err, ErrAdapter) {
		t.Errorf("expected ErrAdapter, got %v", err)
	}
}

func TestGenerateMissingAPIKey(t *testing.T) {
	client := New(Config{})
	_, err := client.SuggestDescription(context.Background(), SuggestDescriptionInput{
		PhotoDataURI: testPhoto,
		LocationData: "somewhere",
	})
	if !errors.Is(err, ErrAdapter) {
		t.Errorf("expected ErrAdapter, got %v", err)
	}
}

func TestSplitDataURI(t *testing.T) {
	mimeType, data, err := splitDataURI("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("splitDataURI returned error: %v", err)
	}
	if mimeType != "image/png" || data != "aGVsbG8=" {
		t.Errorf("got (%q, %q)", mimeType, data)
	}

	bad := []string{
		"http://example.com/photo.png",
		"data:image/png;base64",
		"data:;base64,aGVsbG8=",
		"data:image/png;base64,",
	}
	for _, uri := range bad {
		if _, _, err := splitDataURI(uri); err == nil {
			t.Errorf("splitDataURI(%q) should fail", uri)
		}
	}
}
