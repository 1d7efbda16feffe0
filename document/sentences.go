package document

import (
	"strings"
	"unicode/utf8"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/data"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type splitter struct {
	*sentences.DefaultSentenceTokenizer
}

func loadModel(name string) (*sentences.DefaultSentenceTokenizer, error) {
	b, err := data.Asset("data/" + name + ".json")
	if err != nil {
		return nil, err
	}
	model, err := sentences.LoadTraining(b)
	if err != nil {
		return nil, err
	}
	return sentences.NewSentenceTokenizer(model), nil
}

// newSplitter returns nil when no tokenizer model is available for the
// language, in which case whole paragraphs are treated as single sentence.
func newSplitter(lang language.Tag, log *zap.Logger) *splitter {
	base, confidence := lang.Base()
	if confidence == language.No {
		log.Warn("Unable to determine language base", zap.Stringer("tag", lang))
		return nil
	}
	if base.String() == "en" {
		t, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			log.Warn("Unable to load sentences tokenizer data", zap.Stringer("tag", lang), zap.Error(err))
			return nil
		}
		return &splitter{t}
	}
	name := strings.ToLower(display.English.Languages().Name(base))
	t, err := loadModel(name)
	if err != nil {
		log.Debug("No sentence tokenizer model, sentence splitting is off", zap.Stringer("language", lang), zap.Error(err))
		return nil
	}
	return &splitter{t}
}

// first returns the first sentence of in, cut to at most limit runes on a
// word boundary when limit is positive.
func (s *splitter) first(in string, limit int) string {
	in = strings.TrimSpace(in)
	res := in
	if s != nil {
		for _, sentence := range s.Tokenize(in) {
			if t := strings.TrimSpace(sentence.Text); t != "" {
				res = t
				break
			}
		}
	}
	if limit <= 0 || utf8.RuneCountInString(res) <= limit {
		return res
	}
	runes := []rune(res)[:limit]
	cut := string(runes)
	if i := strings.LastIndexAny(cut, " \t"); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:-") + "…"
}
