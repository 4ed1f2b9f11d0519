// Package i18n provides the English and Korean labels used by the UI and the
// Markdown renderer.
package i18n

import (
	"fmt"
	"strings"
)

// Language selects the label set.
type Language int

const (
	English Language = iota
	Korean
)

// Display returns the language name in its own script.
func (l Language) Display() string {
	if l == Korean {
		return "한국어"
	}
	return "English"
}

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == Korean {
		return English
	}
	return Korean
}

func (l Language) String() string {
	if l == Korean {
		return "Korean"
	}
	return "English"
}

// ParseLanguage accepts "English"/"Korean" and the short codes "en"/"ko".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en", "":
		return English, nil
	case "korean", "ko", "kr":
		return Korean, nil
	}
	return English, fmt.Errorf("unknown language %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(b []byte) error {
	parsed, err := ParseLanguage(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Labeler looks up labels for one language.
type Labeler struct {
	Lang Language
}

// New returns a Labeler for lang.
func New(lang Language) Labeler {
	return Labeler{Lang: lang}
}

// Get returns the label for key, or key itself when it is unknown.
func (l Labeler) Get(key Key) string {
	pair, ok := labels[key]
	if !ok {
		return string(key)
	}
	if l.Lang == Korean && pair[1] != "" {
		return pair[1]
	}
	return pair[0]
}

// NetworkDetailUnavailable names the VPC whose multi-step load failed.
func (l Labeler) NetworkDetailUnavailable(vpcID string) string {
	if l.Lang == Korean {
		return fmt.Sprintf("%s 네트워크 상세 정보를 불러올 수 없습니다. 로그인 상태를 확인하세요.", vpcID)
	}
	return fmt.Sprintf("Unable to load network details for %s. Check your login status.", vpcID)
}

// CurrentLoading describes the step being fetched.
func (l Labeler) CurrentLoading(task string) string {
	if l.Lang == Korean {
		return fmt.Sprintf("현재: %s 로딩 중...", task)
	}
	return fmt.Sprintf("Current: Loading %s...", task)
}

// Seconds formats a duration in seconds.
func (l Labeler) Seconds(v int32) string {
	if l.Lang == Korean {
		return fmt.Sprintf("%d초", v)
	}
	return fmt.Sprintf("%ds", v)
}

// CountOf formats "label (n)".
func (l Labeler) CountOf(key Key, n int) string {
	if l.Lang == Korean {
		return fmt.Sprintf("%s (%d 개)", l.Get(key), n)
	}
	return fmt.Sprintf("%s (%d)", l.Get(key), n)
}

// SkippedResources reports resources left out of an assembled document.
func (l Labeler) SkippedResources(ids []string) string {
	if l.Lang == Korean {
		return fmt.Sprintf("%d개 리소스를 건너뜀: %s", len(ids), strings.Join(ids, ", "))
	}
	return fmt.Sprintf("Skipped %d resource(s): %s", len(ids), strings.Join(ids, ", "))
}

// Saved reports a completed save.
func (l Labeler) Saved(path string) string {
	return fmt.Sprintf("%s: %s", l.Get(SaveComplete), path)
}

// Failed formats a failure label with its cause.
func (l Labeler) Failed(key Key, err error) string {
	return fmt.Sprintf("%s: %v", l.Get(key), err)
}
