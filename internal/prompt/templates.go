package prompt

// Template pairs a stable name with its instructional text. The text is
// product content; changing it changes answer quality, not program behavior.
type Template struct {
	Name string
	Text string
}

var Summary = Template{
	Name: "summary",
	Text: `Provide a clear, concise summary of the following content in 2-3 sentences.
Respond with the summary only, no preamble.

Content:
{content}`,
}

var Insights = Template{
	Name: "insights",
	Text: `Analyze the following content and extract the 3-5 most important insights.
Format each insight as a single bullet point starting with "-".

Content:
{content}`,
}

var Questions = Template{
	Name: "questions",
	Text: `Based on the following content, generate 3-5 thought-provoking questions
that would deepen understanding of the material.
Format each question as a single bullet point starting with "-".

Content:
{content}`,
}

var Connections = Template{
	Name: "connections",
	Text: `Given the following content and the key insights already extracted from it,
identify 3-5 connections to other domains, disciplines, or well-known ideas.
Format each connection as a single bullet point starting with "-".

Content:
{content}

Insights:
{insights}`,
}

var CodeGenerate = Template{
	Name: "code-generate",
	Text: `Write {language} code for the following task. Respond with the code and
brief inline comments only, no surrounding explanation.

Task:
{description}`,
}

var CodeExplain = Template{
	Name: "code-explain",
	Text: `Explain what the following {language} code does, step by step, in plain
language suitable for a developer unfamiliar with it.

Code:
{code}`,
}

var CodeReview = Template{
	Name: "code-review",
	Text: `Review the following {language} code. Point out bugs, potential edge-case
failures, and style issues, and suggest concrete improvements.

Code:
{code}`,
}
