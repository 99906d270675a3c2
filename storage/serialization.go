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


package storage

import (
	"github.com/revsight/revsight/core"
)

// MarshalReview serializes a Review to bytes.
func MarshalReview(review *core.Review) []byte {
	buf := make([]byte, core.ReviewMUS.Size(*review))
	core.ReviewMUS.Marshal(*review, buf)
	return buf
}

// UnmarshalReview deserializes a Review from bytes.
func UnmarshalReview(data []byte) (*core.Review, error) {
	review, _, err := core.ReviewMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// MarshalEnrichment serializes an Enrichment to bytes.
func MarshalEnrichment(enrichment *core.Enrichment) []byte {
	buf := make([]byte, core.EnrichmentMUS.Size(*enrichment))
	core.EnrichmentMUS.Marshal(*enrichment, buf)
	return buf
}

// UnmarshalEnrichment deserializes an Enrichment from bytes.
func UnmarshalEnrichment(data []byte) (*core.Enrichment, error) {
	enrichment, _, err := core.EnrichmentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &enrichment, nil
}

// MarshalEmbedding serializes an Embedding to bytes.
func MarshalEmbedding(embedding *core.Embedding) []byte {
	buf := make([]byte, core.EmbeddingMUS.Size(*embedding))
	core.EmbeddingMUS.Marshal(*embedding, buf)
	return buf
}

// UnmarshalEmbedding deserializes an Embedding from bytes.
func UnmarshalEmbedding(data []byte) (*core.Embedding, error) {
	embedding, _, err := core.EmbeddingMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &embedding, nil
}

// MarshalCachedInsight serializes a CachedInsight to bytes.
func MarshalCachedInsight(insight *core.CachedInsight) []byte {
	buf := make([]byte, core.CachedInsightMUS.Size(*insight))
	core.CachedInsightMUS.Marshal(*insight, buf)
	return buf
}

// UnmarshalCachedInsight deserializes a CachedInsight from bytes.
func UnmarshalCachedInsight(data []byte) (*core.CachedInsight, error) {
	insight, _, err := core.CachedInsightMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &insight, nil
}
