package openai

import "fmt"

const annotationResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "annotations": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "review_id": {
            "type": "string"
          },
          "sentiment": {
            "type": "string",
            "enum": ["positive", "negative", "neutral"]
          },
          "sentiment_score": {
            "type": "number",
            "minimum": -1.0,
            "maximum": 1.0
          },
          "topics": {
            "type": "array",
            "items": {
              "type": "string",
              "pattern": "^[a-z]+( [a-z]+)*$"
            }
          },
          "entities": {
            "type": "array",
            "items": {
              "type": "string"
            }
          }
        },
        "required": ["review_id", "sentiment", "sentiment_score", "topics", "entities"],
        "additionalProperties": false
      }
    }
  },
  "required": ["annotations"],
  "additionalProperties": false
}`

const annotationPromptTemplate = `You analyze customer reviews. For EVERY review in the input, produce exactly one annotation object.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Echo back the review_id of each input review EXACTLY as given. Every input review must appear exactly once.
- Sentiment must be one of "positive", "negative", "neutral", judged from the text; use the rating only as a tiebreaker.
- sentiment_score is a number from -1.0 (most negative) to 1.0 (most positive); 0.0 is neutral.
- Topics are short lowercase phrases, 1-3 words each, naming what the review is about (e.g. "wait time", "pricing", "staff friendliness"). At most 5 per review.
- Entities are concrete things the review mentions (places, products, services). Use the review's own wording. At most 5 per review.
- If a review names no topics or entities, return empty arrays for it.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input:
Review ID: rv_001
Rating: 2.0
Text: Waited 45 minutes for the shuttle and the driver was rude

Review ID: rv_002
Rating: 5.0
Text: Great deal on long term parking highly recommend

Output:
{
  "annotations": [
    {"review_id":"rv_001","sentiment":"negative","sentiment_score":-0.7,"topics":["wait time","staff attitude"],"entities":["shuttle"]},
    {"review_id":"rv_002","sentiment":"positive","sentiment_score":0.8,"topics":["pricing","parking"],"entities":["long term parking"]}
  ]
}`

// buildAnnotationPrompt creates the system prompt with the response schema embedded.
func buildAnnotationPrompt() string {
	return fmt.Sprintf(annotationPromptTemplate, annotationResponseSchema)
}
