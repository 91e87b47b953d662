// services/vision_service.go
package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/vacai/vacai-backend/models"
)

// AnalyzePackingWithClaude sends a suitcase photo to the Claude API and asks
// which of the given packing list items are visible in it. The response
// splits the list into packed and missing names; names are echoed back
// exactly as given so the caller can match them against the list.
func AnalyzePackingWithClaude(imageBytes []byte, format string, packingNames []string) (*models.PackingAnalysis, error) {
	// Encode image to base64
	base64Image := base64.StdEncoding.EncodeToString(imageBytes)

	// Get Claude API key from environment
	claudeAPIKey := os.Getenv("ANTHROPIC_API_KEY")
	if claudeAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}

	claudeURL := "https://api.anthropic.com/v1/messages"

	prompt := fmt.Sprintf(`This is a photo of a packed suitcase or luggage.
Check the photo against this packing list:
%s

Classify every list entry as packed (visible in the photo) or missing.
Respond in this JSON format:
{
  "packed": ["item name", ...],
  "missing": ["item name", ...]
}
Use the exact item names from the list. Every list entry must appear in exactly one array.
Return only valid JSON. No explanations or formatting.`, "- "+strings.Join(packingNames, "\n- "))

	// Construct Claude API request body
	requestBody := map[string]interface{}{
		"model":      "claude-sonnet-4-20250514",
		"max_tokens": 2000,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": prompt,
					},
					{
						"type": "image",
						"source": map[string]interface{}{
							"type":       "base64",
							"media_type": "image/" + format,
							"data":       base64Image,
						},
					},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Claude API request: %v", err)
	}

	req, err := http.NewRequest("POST", claudeURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create Claude API request: %v", err)
	}

	// Add headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", claudeAPIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	// Send the request
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Claude API: %v", err)
	}
	defer resp.Body.Close()

	// Check response status
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Claude API returned non-200 status: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	// Parse the response
	var claudeResp models.ClaudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&claudeResp); err != nil {
		return nil, fmt.Errorf("failed to decode Claude API response: %v", err)
	}

	// Extract the JSON string from Claude's response
	var jsonResponse string
	for _, content := range claudeResp.Content {
		if content.Type == "text" {
			jsonResponse = content.Text
			break
		}
	}

	if jsonResponse == "" {
		return nil, fmt.Errorf("no text content found in Claude's response")
	}

	// Parse the JSON into our structure
	var analysis models.PackingAnalysis
	if err := json.Unmarshal([]byte(jsonResponse), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse Claude's JSON output: %v. Raw response: %s", err, jsonResponse)
	}

	if analysis.Packed == nil {
		analysis.Packed = []string{}
	}
	if analysis.Missing == nil {
		analysis.Missing = []string{}
	}

	return &analysis, nil
}
