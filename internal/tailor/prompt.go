package tailor

import (
	"regexp"
	"strings"
)

const formatRules = `Formatting rules:
- Plain text only. No Markdown, no asterisks for emphasis, no code fences.
- Section titles on their own line in UPPERCASE (for example SUMMARY, EXPERIENCE, SKILLS, EDUCATION).
- One achievement per line, each starting with "• ".
- Leave one blank line between sections.
- Do not invent employers, dates, degrees or certifications.`

// TailorPrompt rewrites an existing resume for a job posting.
const TailorPrompt = `You are an expert resume writer. Rewrite the resume below so it targets the job description that follows it.

Keep every fact truthful to the original resume. Reorder and rephrase experience so the most relevant work comes first, mirror the job description's terminology where the candidate's experience supports it, and tighten wording to quantified, action-led bullets.

` + formatRules + `

Respond with ONLY the finished resume text.`

// GeneratePrompt drafts a resume from a job description alone.
const GeneratePrompt = `You are an expert resume writer. No resume was provided. Draft a professional resume template for a strong candidate for the job description below.

Use clearly marked placeholders in square brackets (for example [Your Name], [Company], [Year]) wherever personal details are required.

` + formatRules + `

Respond with ONLY the finished resume text.`

// BuildPrompt creates the full prompt. An empty resume selects the
// generation prompt.
func BuildPrompt(resumeText, jobDescription string) string {
	var sb strings.Builder
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		sb.WriteString(GeneratePrompt)
	} else {
		sb.WriteString(TailorPrompt)
		sb.WriteString("\n\n--- RESUME ---\n")
		sb.WriteString(resumeText)
	}
	sb.WriteString("\n\n--- JOB DESCRIPTION ---\n")
	sb.WriteString(strings.TrimSpace(jobDescription))
	return sb.String()
}

var (
	codeBlockRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	boldRe      = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	mdHeadingRe = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
)

// CleanOutput normalizes model output into classifier-friendly plain text:
// code fences, Markdown emphasis and heading markers are removed and line
// endings become LF.
func CleanOutput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = stripCodeBlock(s)
	s = boldRe.ReplaceAllString(s, "$1")
	s = mdHeadingRe.ReplaceAllStringFunc(s, func(line string) string {
		return strings.ToUpper(mdHeadingRe.FindStringSubmatch(line)[1])
	})

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}
