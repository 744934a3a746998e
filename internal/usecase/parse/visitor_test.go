package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-parser/internal/domain/entity"
)

// recordingVisitor records which method Accept dispatched to.
type recordingVisitor struct {
	called string
}

func (v *recordingVisitor) VisitNewsAPI(Parser) []entity.Article {
	v.called = "newsapi"
	return nil
}

func (v *recordingVisitor) VisitSimple(Parser) []entity.Article {
	v.called = "simple"
	return nil
}

func (v *recordingVisitor) VisitRSS(Parser) []entity.Article {
	v.called = "rss"
	return nil
}

func (v *recordingVisitor) VisitUnknown(Parser) []entity.Article {
	v.called = "unknown"
	return nil
}

func TestParser_AcceptDispatchesOnFormat(t *testing.T) {
	tests := []struct {
		parser Parser
		want   string
	}{
		{parser: NewNewsParser(""), want: "newsapi"},
		{parser: NewSimpleParser(""), want: "simple"},
		{parser: NewRSSParser(""), want: "rss"},
		{parser: New(FormatKind(42), ""), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			v := &recordingVisitor{}
			tt.parser.Accept(v)
			assert.Equal(t, tt.want, v.called)
		})
	}
}

func TestDecodeVisitor_MatchesParse(t *testing.T) {
	inputs := []Parser{
		NewNewsParser(readFixture(t, "valid.json")),
		NewNewsParser(readFixture(t, "mixed.json")),
		NewNewsParser(readFixture(t, "missing_title_url.json")),
		NewNewsParser(readFixture(t, "malformed.json")),
		NewSimpleParser(readFixture(t, "simple_valid.json")),
		NewSimpleParser(readFixture(t, "simple_invalid.json")),
		NewSimpleParser(readFixture(t, "malformed.json")),
		NewRSSParser(readFixture(t, "feed.xml")),
	}
	visitor := NewDecodeVisitor(nil)

	for _, p := range inputs {
		viaParse := p.Parse(nil)
		viaVisitor := p.Accept(visitor)

		require.NotNil(t, viaVisitor)
		if diff := cmp.Diff(viaParse, viaVisitor); diff != "" {
			t.Errorf("%s: visitor result differs from Parse (-parse +visitor):\n%s", p.Format, diff)
		}
	}
}
