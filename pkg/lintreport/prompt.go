package lintreport

import "fmt"

// promptTemplate embeds the raw findings verbatim. The surrounding
// instructions are fixed.
const promptTemplate = `
You are a senior software engineer reviewing a pull request. CI ran golangci-lint and identified the following Go code quality issues.

For each issue, write a clear and objective technical comment explaining:

* **🔍 Description:** What is wrong and why it matters
* **📍 Location:** File and line where the issue occurs
* **🛠️ Solution:** How to fix it, including code examples when relevant
* **⚡ Priority:** High/Medium/Low based on impact

**Issues found by golangci-lint:**
` + "```" + `
%s
` + "```" + `

Format your response as a numbered markdown list, grouping similar issues when possible. Be concise but informative.
`

// BuildPrompt constructs the completion prompt for the given findings.
func BuildPrompt(findings string) string {
	return fmt.Sprintf(promptTemplate, findings)
}
