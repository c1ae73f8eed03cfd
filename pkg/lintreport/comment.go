package lintreport

import "fmt"

// CommentHeading opens every lint report comment.
const CommentHeading = "### 🔍 Lint issues found by CI"

// suggestionBullets close every lint report comment.
const suggestionBullets = `**💡 Suggestions:**

- Fix the reported issues to keep the code quality and style consistent.
- Run ` + "`make lint`" + ` locally to validate before pushing new changes.
- Use ` + "`make lint-fix`" + ` to automatically fix some formatting issues.`

// FormatComment wraps the generated summary in the fixed comment
// template: heading, summary, and the static suggestion bullets.
func FormatComment(summary string) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s", CommentHeading, summary, suggestionBullets)
}
