package github

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const reportFooter = `<details>
<summary>About this report</summary>

This summary was generated automatically: a language model plans the search
query and synthesizes the headlines, a news search API aggregates the
articles, and GitHub delivers the notifications.
</details>`

// MentionLine renders user names as a single line of @mentions.
func MentionLine(users []string) string {
	mentions := make([]string, 0, len(users))
	for _, user := range users {
		mentions = append(mentions, "@"+user)
	}

	return strings.Join(mentions, " ")
}

// IssueTitle builds the daily issue title for a topic.
func IssueTitle(topic string, generatedAt time.Time) string {
	return fmt.Sprintf("News: %s - %s", titleCase(topic), generatedAt.Format("2006-01-02"))
}

// FormatReport wraps the synthesized report into the issue/comment body:
// optional mentions, a header with the topic and generation time, the report
// itself and an explanatory footer.
func FormatReport(topic, report string, mentions []string, generatedAt time.Time) string {
	var b strings.Builder

	if len(mentions) > 0 {
		b.WriteString(MentionLine(mentions))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("## Daily News Intelligence: %s\n\n", titleCase(topic)))
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", generatedAt.Format("January 2, 2006 at 15:04 MST")))
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(report))
	b.WriteString("\n\n---\n\n")
	b.WriteString(reportFooter)

	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
