// Copyright 2025 Revsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/revsight/revsight/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Annotator implements ai.Annotator using OpenAI-compatible chat APIs.
// Each call sends the whole review batch in a single chat request.
type Annotator struct {
	client llms.Model
	logger *slog.Logger
}

// annotation is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type annotation struct {
	ReviewID       string   `json:"review_id"`
	Sentiment      string   `json:"sentiment"`
	SentimentScore float64  `json:"sentiment_score"`
	Topics         []string `json:"topics"`
	Entities       []string `json:"entities"`
}

// batchAnalysis is the wrapper structure for the LLM's JSON response.
type batchAnalysis struct {
	Annotations []annotation `json:"annotations"`
}

// newAnnotator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAnnotator(config *ai.Config) (*Annotator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Annotator{
		client: client,
		logger: slog.Default().With("component", "openai-annotator"),
	}, nil
}

// NewAnnotator creates a new annotator using the provided configuration.
//
// Returns ai.Annotator interface to enforce abstraction.
func NewAnnotator(config *ai.Config) (ai.Annotator, error) {
	return newAnnotator(config)
}

// Annotate analyzes a batch of reviews in one chat completion request.
// The prompt instructs the model to return one annotation per review ID;
// callers verify coverage before using the result.
func (a *Annotator) Annotate(ctx context.Context, requests []ai.AnnotationRequest) ([]ai.Annotation, error) {
	if len(requests) == 0 {
		return []ai.Annotation{}, nil
	}

	var sb strings.Builder
	for _, req := range requests {
		fmt.Fprintf(&sb, "Review ID: %s\nRating: %.1f\nText: %s\n\n", req.ReviewID, req.Rating, scrubString(req.Text))
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAnnotationPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(sb.String()),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result batchAnalysis
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return []ai.Annotation{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing annotator response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse annotator response after retries", "err", lastErr)
		return nil, lastErr
	}

	annotations := make([]ai.Annotation, 0, len(result.Annotations))
	for _, ann := range result.Annotations {
		topics := make([]string, 0, len(ann.Topics))
		for _, topic := range ann.Topics {
			topic = strings.ToLower(strings.TrimSpace(topic))
			if topic != "" {
				topics = append(topics, topic)
			}
		}
		annotations = append(annotations, ai.Annotation{
			ReviewID:       strings.TrimSpace(ann.ReviewID),
			Sentiment:      strings.ToLower(strings.TrimSpace(ann.Sentiment)),
			SentimentScore: ann.SentimentScore,
			Topics:         topics,
			Entities:       ann.Entities,
		})
	}

	a.logger.Debug("annotated review batch",
		"requested", len(requests),
		"returned", len(annotations))

	return annotations, nil
}
