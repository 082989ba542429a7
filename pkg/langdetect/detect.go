// Package langdetect classifies source files into the surface languages
// this tool can parse. Extension mapping is tried first; for extensionless
// or ambiguous files it falls back to content heuristics backed by go-enry.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifies a supported surface language.
type Language string

const (
	Unknown Language = ""
	Calc    Language = "calc"
	Conf    Language = "conf"
)

// String returns the language name, or "unknown".
func (l Language) String() string {
	if l == Unknown {
		return "unknown"
	}
	return string(l)
}

var byExtension = map[string]Language{
	".calc": Calc,
	".conf": Conf,
	".ini":  Conf,
	".cfg":  Conf,
}

// Extensions returns the file extensions with a known language mapping.
func Extensions() []string {
	exts := make([]string, 0, len(byExtension))
	for ext := range byExtension {
		exts = append(exts, ext)
	}
	return exts
}

// DetectPath classifies a file by its path, consulting content only when
// the extension is not conclusive. Content may be nil.
func DetectPath(path string, content []byte) Language {
	if lang, ok := byExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return Detect(content)
}

// Detect classifies content without a path.
// Returns Unknown when no strategy is confident.
func Detect(content []byte) Language {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	// Scripts with a shebang are never ours.
	if _, safe := enry.GetLanguageByShebang(content); safe {
		return Unknown
	}

	if lang := detectByPattern(content); lang != Unknown {
		return lang
	}

	// Last resort: the enry classifier recognizes INI-shaped content.
	candidates := []string{"INI", "Text"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang == "INI" {
		return Conf
	}

	return Unknown
}

// detectByPattern checks for language patterns that are highly indicative.
func detectByPattern(content []byte) Language {
	if lang := detectCalc(content); lang != Unknown {
		return lang
	}
	return detectConf(content)
}

// detectCalc looks for let statements, the comment forms, and #pragma
// lines, none of which appear in config files. The comment checks are
// deliberately narrow so URLs in config values do not match.
func detectCalc(content []byte) Language {
	s := string(content)
	if strings.Contains(s, "let ") && strings.Contains(s, "=") && strings.Contains(s, ";") {
		return Calc
	}
	if strings.HasPrefix(s, "#pragma") || strings.Contains(s, "\n#pragma") {
		return Calc
	}
	if strings.Contains(s, "// ") || strings.Contains(s, "/*") {
		return Calc
	}
	return Unknown
}

// detectConf counts section headers and key = value lines.
func detectConf(content []byte) Language {
	hits := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0 || line[0] == ';' || line[0] == '#':
			continue
		case line[0] == '[' && bytes.HasSuffix(line, []byte("]")):
			hits++
		case bytes.Contains(line, []byte("=")):
			hits++
		}
	}
	if hits >= 2 {
		return Conf
	}
	return Unknown
}
