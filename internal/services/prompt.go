package services

import (
	"fmt"
	"strings"
)

const missingLinkPlaceholder = "Não informado"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumePrompt creates the instruction for résumé analysis
func (pb *PromptBuilder) BuildResumePrompt() string {
	return `You are an experienced technical recruiter and career coach.

Analyze the résumé text provided in the context and extract:
1. Skills - technical and behavioral skills the candidate demonstrates
2. Relevant experience - roles, companies, durations and the most relevant achievements
3. Education - degrees, institutions, certifications and courses

Finish with a short summary (3-5 sentences) of the candidate profile: seniority,
main strengths and the kind of position the candidate fits best.

Only use information present in the résumé. If a section is missing, say so.`
}

// BuildJobPrompt creates the instruction for job posting analysis
func (pb *PromptBuilder) BuildJobPrompt() string {
	return `You are an experienced technical recruiter helping a candidate prepare for a job application.

Analyze the job posting provided in the context and describe:
1. Requirements - mandatory and desirable skills, experience and education
2. Responsibilities - the main activities of the role
3. Company culture - signals about culture, values and work environment that can be inferred from the text

Only use information present in the posting. Mark inferences about culture as inferences.`
}

// BuildCompatibilityPrompt creates the instruction for résumé vs job comparison
func (pb *PromptBuilder) BuildCompatibilityPrompt() string {
	return `You are an experienced technical recruiter.

Compare the candidate résumé with the job posting provided in the context and describe:
1. Matching points - requirements the candidate clearly meets, with evidence from the résumé
2. Gaps - requirements that are missing or weakly supported by the résumé
3. Summary - a short overall assessment of how well the candidate fits the position

Only use information present in the two texts.`
}

// BuildJobContext formats the job posting as model context
func (pb *PromptBuilder) BuildJobContext(link, description string) string {
	if strings.TrimSpace(link) == "" {
		link = missingLinkPlaceholder
	}
	return fmt.Sprintf("Link: %s\n\nDescrição: %s", link, description)
}

// BuildCompatibilityContext formats both texts as model context
func (pb *PromptBuilder) BuildCompatibilityContext(resumeText, jobText string) string {
	return fmt.Sprintf("--- CURRÍCULO ---\n%s\n\n--- VAGA ---\n%s", resumeText, jobText)
}
