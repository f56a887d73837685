package registry

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDesktopDirs are the standard application-entry locations,
// searched in order (user entries shadow system ones).
func DefaultDesktopDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}
	return append(dirs,
		"/usr/local/share/applications",
		"/usr/share/applications",
	)
}

// ResolveDesktopFile guesses the desktop entry for a window. It scans
// dirs for a .desktop file whose name contains the class token or the
// first whitespace token of the title (case-insensitive); the first
// match wins. With no match it synthesizes lowercase(class).desktop,
// which may not exist — the launcher finds out at launch time.
func ResolveDesktopFile(dirs []string, class, title string) string {
	tokens := desktopTokens(class, title)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, ".desktop") {
				continue
			}
			lower := strings.ToLower(name)
			for _, tok := range tokens {
				if strings.Contains(lower, tok) {
					return name
				}
			}
		}
	}
	return strings.ToLower(class) + ".desktop"
}

func desktopTokens(class, title string) []string {
	var tokens []string
	if class != "" {
		tokens = append(tokens, strings.ToLower(class))
	}
	if fields := strings.Fields(title); len(fields) > 0 {
		tok := strings.ToLower(fields[0])
		if tok != "" && (len(tokens) == 0 || tokens[0] != tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
