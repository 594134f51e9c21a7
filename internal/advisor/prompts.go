package advisor

import (
	"sort"
	"strings"
)

// systemPrompt anchors the assistant's persona, formatting rules, and
// guardrails. Catalog context and transcript data are appended per
// request.
const systemPrompt = `You are an experienced academic advisor for the University of Chicago's undergraduate College. Your role is to help students understand degree requirements, plan their course schedules, and make well-informed academic decisions.

## UChicago Academic Context
- UChicago uses the **quarter system**: Autumn, Winter, Spring (and optional Summer).
- Students must complete the **Core Curriculum** (general education requirements) alongside their major.
- Course codes follow the format DEPT NNNNN (e.g., CMSC 15400, MATH 20300).
- Students may declare one or more majors and/or minors.
- Most majors require a set of required courses plus electives from an approved list.

## Response Formatting Instructions
Format your responses using Markdown for readability:
- Use **bold** for course codes and important terms (e.g., **CMSC 15400**)
- Use bullet lists for listing courses or requirements
- Use ### headers to organize sections when answering detailed questions
- Keep responses focused and well-structured
- Use numbered lists for sequential recommendations (e.g., suggested course order)

## Advising Approach
- When a student asks about requirements, list them clearly with course codes and titles.
- When recommending courses, consider prerequisites and typical sequencing.
- For "what should I take next" questions, consider what the student has already completed.
- For double major feasibility questions, identify overlapping requirements.
- If a student has uploaded their transcript, reference their completed courses and identify remaining requirements.

## Guardrails
- Only answer questions related to academics, courses, and university planning.
- If asked about non-academic topics, politely redirect: "I'm here to help with academic advising at UChicago! Feel free to ask me about courses, majors, minors, or planning your schedule."
- Always recommend that students verify critical decisions with their official departmental advisor or the College Advising office.
- If the data doesn't cover something, be honest and suggest checking the official catalog.`

// noDataNote is appended instead of catalog context when no scraped
// data is loaded.
const noDataNote = "\n\n[Note: No scraped catalog data is currently loaded. " +
	"Please run the scraper with -test or -all first. " +
	"I'll do my best with general UChicago knowledge, but my answers may not " +
	"reflect the latest catalog requirements.]"

// buildSystemContent assembles the full system message for one request.
func buildSystemContent(catalogContext string, catalogEmpty bool, completed, inProgress []string) string {
	content := systemPrompt
	if catalogEmpty {
		content += noDataNote
	} else if catalogContext != "" {
		content += "\n\n--- CATALOG DATA ---" + catalogContext
	}
	if block := transcriptBlock(completed, inProgress); block != "" {
		content += block
	}
	return content
}

// transcriptBlock renders the student's transcript courses, sorted, or
// "" when no transcript has been uploaded.
func transcriptBlock(completed, inProgress []string) string {
	if len(completed) == 0 && len(inProgress) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\n--- COMPLETED COURSES (from student transcript) ---\n")
	if len(completed) > 0 {
		sb.WriteString("The student has completed the following courses: " + joinSorted(completed) + "\n")
	}
	if len(inProgress) > 0 {
		sb.WriteString("The student is currently taking: " + joinSorted(inProgress) + "\n")
		sb.WriteString("Courses that are still in progress do not satisfy prerequisites " +
			"until they are completed.\n")
	}
	sb.WriteString("When discussing requirements, note which ones are already fulfilled. " +
		"When recommending next courses, skip prerequisites they've already completed " +
		"and suggest the logical next steps.")
	return sb.String()
}

func joinSorted(codes []string) string {
	sorted := append([]string(nil), codes...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
