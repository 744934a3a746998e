package parse

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"articles-parser/internal/domain/entity"
	"articles-parser/internal/observability/metrics"
)

// Decode decodes text according to format and returns the valid articles in input order.
// It is the only decode-and-validate routine in the package; Parser.Parse and
// DecodeVisitor both call it.
//
// Decode never fails. A decode failure is logged at error level and yields an
// empty slice. Each invalid article is logged at warning level with the names
// of its missing fields.
func Decode(format FormatKind, text string, logger *slog.Logger) []entity.Article {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("format", format.String()))

	articles, err := decodeArticles(format, text)
	if err != nil {
		metrics.RecordDecodeFailure(format.String())
		logger.Error("error reading or parsing document", slog.Any("error", err))
		return []entity.Article{}
	}

	valid := make([]entity.Article, 0, len(articles))
	for _, a := range articles {
		ok := a.IsValid()
		metrics.RecordArticle(format.String(), ok)
		if !ok {
			logger.Warn("invalid required fields",
				slog.String("fields", a.InvalidFieldNames()))
			continue
		}
		valid = append(valid, a)
	}
	return valid
}

// decodeArticles decodes text into the raw, unfiltered article list.
func decodeArticles(format FormatKind, text string) ([]entity.Article, error) {
	switch format {
	case FormatNewsAPI:
		return decodeNewsAPI(text)
	case FormatSimple:
		return decodeSimple(text)
	case FormatRSS:
		return decodeRSS(text)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func decodeNewsAPI(text string) ([]entity.Article, error) {
	var envelope entity.NewsEnvelope
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, fmt.Errorf("%w: newsapi envelope: %v", ErrDecodeFailed, err)
	}
	return envelope.Articles, nil
}

func decodeSimple(text string) ([]entity.Article, error) {
	var article *entity.Article
	if err := json.Unmarshal([]byte(text), &article); err != nil {
		return nil, fmt.Errorf("%w: simple article: %v", ErrDecodeFailed, err)
	}
	if article == nil {
		return nil, fmt.Errorf("%w: simple article: null document", ErrDecodeFailed)
	}
	return []entity.Article{*article}, nil
}
