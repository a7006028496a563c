package promptweave

import (
	"regexp"
	"strings"
)

// RoleMessage is one role-labeled message block parsed out of text.
type RoleMessage struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// roleTagPattern matches exactly the uppercase role tags, non-greedily.
// Go's RE2 has no backreferences, so each role pairs with its own closer
// through alternation; group index identifies the matched role.
var roleTagPattern = regexp.MustCompile(
	`(?s)<` + RoleTagSystem + `>(.*?)</` + RoleTagSystem + `>` +
		`|<` + RoleTagUser + `>(.*?)</` + RoleTagUser + `>` +
		`|<` + RoleTagAssistant + `>(.*?)</` + RoleTagAssistant + `>`)

// roleTagGroups maps submatch group index to the role it captures
var roleTagGroups = [...]string{RoleSystem, RoleUser, RoleAssistant}

// ParseRoleTags splits text into an ordered sequence of role-labeled
// messages. Only the exact uppercase tags <SYSTEM>, <USER> and <ASSISTANT>
// delimit messages; any other casing is inert literal text. Bodies are
// trimmed and empty bodies dropped. Text with no tags at all becomes a
// single user message; empty or whitespace-only input yields nil.
func ParseRoleTags(text string) []RoleMessage {
	matches := roleTagPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []RoleMessage{{Role: RoleUser, Content: trimmed}}
	}

	var messages []RoleMessage
	for _, match := range matches {
		for group, role := range roleTagGroups {
			start, end := match[2*(group+1)], match[2*(group+1)+1]
			if start < 0 {
				continue
			}
			content := strings.TrimSpace(text[start:end])
			if content != "" {
				messages = append(messages, RoleMessage{Role: role, Content: content})
			}
			break
		}
	}
	return messages
}
