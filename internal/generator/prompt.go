package generator

import "fmt"

// promptTemplate is the single template used by every provider tier. The
// text is fenced so the model cannot confuse it with the instructions.
const promptTemplate = `Generate a list of questions based on the following text.
Each question should be directly answerable from the text provided.
Provide the questions as a numbered list.

Text:
---
%s
---

Questions:
`

// BuildPrompt renders the question-generation prompt for one text.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
