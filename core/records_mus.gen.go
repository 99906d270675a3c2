// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice74DxQR2Ob1DPLsjV3uBgmQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceUΔU9VP7xLax1nX4H0jHBlQΞΞ = ord.NewSliceSer[Quote](QuoteMUS)
	slicebLtnglZ37Du093FIofUVAwΞΞ = ord.NewSliceSer[string](ord.String)
	slicekI5zDmRCc3p4JXiIp47yZQΞΞ = ord.NewSliceSer[Driver](DriverMUS)
	sliceΔ3YAΔvAmnWZ5R9jCZs9L1QΞΞ = ord.NewSliceSer[TopicCount](TopicCountMUS)
)

var SourceMUS = sourceMUS{}

type sourceMUS struct{}

func (s sourceMUS) Marshal(v Source, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s sourceMUS) Unmarshal(bs []byte) (v Source, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Source(tmp)
	return
}

func (s sourceMUS) Size(v Source) (size int) {
	return ord.String.Size(string(v))
}

func (s sourceMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var SentimentMUS = sentimentMUS{}

type sentimentMUS struct{}

func (s sentimentMUS) Marshal(v Sentiment, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s sentimentMUS) Unmarshal(bs []byte) (v Sentiment, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Sentiment(tmp)
	return
}

func (s sentimentMUS) Size(v Sentiment) (size int) {
	return ord.String.Size(string(v))
}

func (s sentimentMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var ReviewMUS = reviewMUS{}

type reviewMUS struct{}

func (s reviewMUS) Marshal(v Review, bs []byte) (n int) {
	n = ord.String.Marshal(v.ReviewID, bs)
	n += ord.String.Marshal(v.LocationID, bs[n:])
	n += SourceMUS.Marshal(v.Source, bs[n:])
	n += varint.Float64.Marshal(v.Rating, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += ord.String.Marshal(v.AuthorName, bs[n:])
	n += ord.String.Marshal(v.AuthorCategory, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.PublishedAt, bs[n:])
	n += ord.String.Marshal(v.PublishedAtRelative, bs[n:])
	n += ord.String.Marshal(v.Language, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.IngestedAt, bs[n:])
}

func (s reviewMUS) Unmarshal(bs []byte) (v Review, n int, err error) {
	v.ReviewID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.LocationID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Source, n1, err = SourceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rating, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AuthorName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AuthorCategory, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PublishedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PublishedAtRelative, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Language, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IngestedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s reviewMUS) Size(v Review) (size int) {
	size = ord.String.Size(v.ReviewID)
	size += ord.String.Size(v.LocationID)
	size += SourceMUS.Size(v.Source)
	size += varint.Float64.Size(v.Rating)
	size += ord.String.Size(v.Text)
	size += ord.String.Size(v.AuthorName)
	size += ord.String.Size(v.AuthorCategory)
	size += raw.TimeUnixMicro.Size(v.PublishedAt)
	size += ord.String.Size(v.PublishedAtRelative)
	size += ord.String.Size(v.Language)
	return size + raw.TimeUnixMicro.Size(v.IngestedAt)
}

func (s reviewMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SourceMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var EnrichmentMUS = enrichmentMUS{}

type enrichmentMUS struct{}

func (s enrichmentMUS) Marshal(v Enrichment, bs []byte) (n int) {
	n = ord.String.Marshal(v.ReviewID, bs)
	n += SentimentMUS.Marshal(v.Sentiment, bs[n:])
	n += varint.Float64.Marshal(v.SentimentScore, bs[n:])
	n += slicebLtnglZ37Du093FIofUVAwΞΞ.Marshal(v.Topics, bs[n:])
	n += slicebLtnglZ37Du093FIofUVAwΞΞ.Marshal(v.Entities, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.ProcessedAt, bs[n:])
}

func (s enrichmentMUS) Unmarshal(bs []byte) (v Enrichment, n int, err error) {
	v.ReviewID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Sentiment, n1, err = SentimentMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SentimentScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Topics, n1, err = slicebLtnglZ37Du093FIofUVAwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Entities, n1, err = slicebLtnglZ37Du093FIofUVAwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ProcessedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s enrichmentMUS) Size(v Enrichment) (size int) {
	size = ord.String.Size(v.ReviewID)
	size += SentimentMUS.Size(v.Sentiment)
	size += varint.Float64.Size(v.SentimentScore)
	size += slicebLtnglZ37Du093FIofUVAwΞΞ.Size(v.Topics)
	size += slicebLtnglZ37Du093FIofUVAwΞΞ.Size(v.Entities)
	return size + raw.TimeUnixMicro.Size(v.ProcessedAt)
}

func (s enrichmentMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = SentimentMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicebLtnglZ37Du093FIofUVAwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicebLtnglZ37Du093FIofUVAwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var EmbeddingMUS = embeddingMUS{}

type embeddingMUS struct{}

func (s embeddingMUS) Marshal(v Embedding, bs []byte) (n int) {
	n = ord.String.Marshal(v.ReviewID, bs)
	n += slice74DxQR2Ob1DPLsjV3uBgmQΞΞ.Marshal(v.Vector, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
}

func (s embeddingMUS) Unmarshal(bs []byte) (v Embedding, n int, err error) {
	v.ReviewID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = slice74DxQR2Ob1DPLsjV3uBgmQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s embeddingMUS) Size(v Embedding) (size int) {
	size = ord.String.Size(v.ReviewID)
	size += slice74DxQR2Ob1DPLsjV3uBgmQΞΞ.Size(v.Vector)
	return size + raw.TimeUnixMicro.Size(v.CreatedAt)
}

func (s embeddingMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slice74DxQR2Ob1DPLsjV3uBgmQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var TopicCountMUS = topicCountMUS{}

type topicCountMUS struct{}

func (s topicCountMUS) Marshal(v TopicCount, bs []byte) (n int) {
	n = ord.String.Marshal(v.Topic, bs)
	return n + varint.Int.Marshal(v.Count, bs[n:])
}

func (s topicCountMUS) Unmarshal(bs []byte) (v TopicCount, n int, err error) {
	v.Topic, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s topicCountMUS) Size(v TopicCount) (size int) {
	size = ord.String.Size(v.Topic)
	return size + varint.Int.Size(v.Count)
}

func (s topicCountMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var DriverMUS = driverMUS{}

type driverMUS struct{}

func (s driverMUS) Marshal(v Driver, bs []byte) (n int) {
	n = ord.String.Marshal(v.Topic, bs)
	return n + varint.Float64.Marshal(v.Impact, bs[n:])
}

func (s driverMUS) Unmarshal(bs []byte) (v Driver, n int, err error) {
	v.Topic, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Impact, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s driverMUS) Size(v Driver) (size int) {
	size = ord.String.Size(v.Topic)
	return size + varint.Float64.Size(v.Impact)
}

func (s driverMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var QuoteMUS = quoteMUS{}

type quoteMUS struct{}

func (s quoteMUS) Marshal(v Quote, bs []byte) (n int) {
	n = ord.String.Marshal(v.ReviewID, bs)
	n += ord.String.Marshal(v.Text, bs[n:])
	return n + varint.Float64.Marshal(v.SentimentScore, bs[n:])
}

func (s quoteMUS) Unmarshal(bs []byte) (v Quote, n int, err error) {
	v.ReviewID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SentimentScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s quoteMUS) Size(v Quote) (size int) {
	size = ord.String.Size(v.ReviewID)
	size += ord.String.Size(v.Text)
	return size + varint.Float64.Size(v.SentimentScore)
}

func (s quoteMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var CachedInsightMUS = cachedInsightMUS{}

type cachedInsightMUS struct{}

func (s cachedInsightMUS) Marshal(v CachedInsight, bs []byte) (n int) {
	n = ord.String.Marshal(v.LocationID, bs)
	n += ord.String.Marshal(v.Window, bs[n:])
	n += sliceΔ3YAΔvAmnWZ5R9jCZs9L1QΞΞ.Marshal(v.TopTopics, bs[n:])
	n += slicekI5zDmRCc3p4JXiIp47yZQΞΞ.Marshal(v.KeyDrivers, bs[n:])
	n += sliceUΔU9VP7xLax1nX4H0jHBlQΞΞ.Marshal(v.RepresentativeQuotes, bs[n:])
	n += slicebLtnglZ37Du093FIofUVAwΞΞ.Marshal(v.Anomalies, bs[n:])
	n += ord.String.Marshal(v.GeneratedSummary, bs[n:])
	n += varint.Int.Marshal(v.ReviewCount, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
}

func (s cachedInsightMUS) Unmarshal(bs []byte) (v CachedInsight, n int, err error) {
	v.LocationID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Window, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TopTopics, n1, err = sliceΔ3YAΔvAmnWZ5R9jCZs9L1QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.KeyDrivers, n1, err = slicekI5zDmRCc3p4JXiIp47yZQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RepresentativeQuotes, n1, err = sliceUΔU9VP7xLax1nX4H0jHBlQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Anomalies, n1, err = slicebLtnglZ37Du093FIofUVAwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GeneratedSummary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ReviewCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s cachedInsightMUS) Size(v CachedInsight) (size int) {
	size = ord.String.Size(v.LocationID)
	size += ord.String.Size(v.Window)
	size += sliceΔ3YAΔvAmnWZ5R9jCZs9L1QΞΞ.Size(v.TopTopics)
	size += slicekI5zDmRCc3p4JXiIp47yZQΞΞ.Size(v.KeyDrivers)
	size += sliceUΔU9VP7xLax1nX4H0jHBlQΞΞ.Size(v.RepresentativeQuotes)
	size += slicebLtnglZ37Du093FIofUVAwΞΞ.Size(v.Anomalies)
	size += ord.String.Size(v.GeneratedSummary)
	size += varint.Int.Size(v.ReviewCount)
	return size + raw.TimeUnixMicro.Size(v.CreatedAt)
}

func (s cachedInsightMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceΔ3YAΔvAmnWZ5R9jCZs9L1QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekI5zDmRCc3p4JXiIp47yZQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceUΔU9VP7xLax1nX4H0jHBlQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicebLtnglZ37Du093FIofUVAwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
