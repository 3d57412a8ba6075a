package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules tunes the detail-page extractor without a rebuild.
type Rules struct {
	ReviewHeadings       []string `yaml:"review_headings"`
	FAQKeywords          []string `yaml:"faq_keywords"`
	ConversationKeywords []string `yaml:"conversation_keywords"`
}

// DefaultRules returns the built-in keyword lists.
func DefaultRules() *Rules {
	return &Rules{
		ReviewHeadings:       []string{"評価・感想", "評価", "レビュー"},
		FAQKeywords:          []string{"FAQ", "よくある質問", "Q&A", "question"},
		ConversationKeywords: []string{"トークルーム", "回答例", "サンプル会話", "やりとり例"},
	}
}

// LoadRules reads extraction rules from a YAML file. An empty path returns
// the defaults; lists missing from the file keep their default values.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %q: %w", path, err)
	}

	var file Rules
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rules: parse %q: %w", path, err)
	}

	if len(file.ReviewHeadings) > 0 {
		rules.ReviewHeadings = file.ReviewHeadings
	}
	if len(file.FAQKeywords) > 0 {
		rules.FAQKeywords = file.FAQKeywords
	}
	if len(file.ConversationKeywords) > 0 {
		rules.ConversationKeywords = file.ConversationKeywords
	}
	return rules, nil
}
