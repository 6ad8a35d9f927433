package analysis

import (
	"strings"
)

// buildPrompt assembles the user prompt for one analysis type. Each variant
// spells out the JSON structure the endpoint expects back.
func buildPrompt(analysisType, language, text string) string {
	var sb strings.Builder

	switch analysisType {
	case TypeGrammarOnly:
		sb.WriteString("Analyze the following text for GRAMMAR mistakes only. Ignore spelling errors.\n")
		sb.WriteString("Language: " + language + "\n\n")
		sb.WriteString("For each grammar mistake found:\n")
		sb.WriteString("1. Identify the exact word or phrase with the mistake\n")
		sb.WriteString("2. Explain what type of grammar error it is\n")
		sb.WriteString("3. Provide the correct version\n")
		sb.WriteString("4. Give the position (approximate line/sentence number)\n\n")
		sb.WriteString("Text to analyze:\n" + text + "\n\n")
		sb.WriteString(responseFormat("grammar", TypeGrammarOnly))
	case TypeSpellingOnly:
		sb.WriteString("Analyze the following text for SPELLING mistakes only. Ignore grammar errors.\n")
		sb.WriteString("Language: " + language + "\n\n")
		sb.WriteString("For each spelling mistake found:\n")
		sb.WriteString("1. Identify the exact misspelled word\n")
		sb.WriteString("2. Provide the correct spelling\n")
		sb.WriteString("3. Give the position (approximate line/sentence number)\n\n")
		sb.WriteString("Text to analyze:\n" + text + "\n\n")
		sb.WriteString(responseFormat("spelling", TypeSpellingOnly))
	default:
		sb.WriteString("Analyze the following text for both GRAMMAR and SPELLING mistakes.\n")
		sb.WriteString("Language: " + language + "\n\n")
		sb.WriteString("For each mistake found:\n")
		sb.WriteString("1. Identify the exact word or phrase with the mistake\n")
		sb.WriteString("2. Specify if it's a grammar or spelling error\n")
		sb.WriteString("3. Provide the correct version\n")
		sb.WriteString("4. Explain the error\n")
		sb.WriteString("5. Give the position (approximate line/sentence number)\n\n")
		sb.WriteString("Text to analyze:\n" + text + "\n\n")
		sb.WriteString(responseFormat(`grammar" or "spelling`, TypeGrammarSpelling))
	}

	return sb.String()
}

func responseFormat(mistakeType, analysisType string) string {
	var sb strings.Builder
	sb.WriteString("Return the response in JSON format with this structure:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"mistakes\": [\n")
	sb.WriteString("    {\n")
	sb.WriteString(`      "type": "` + mistakeType + "\",\n")
	sb.WriteString("      \"original\": \"incorrect text\",\n")
	sb.WriteString("      \"corrected\": \"correct text\",\n")
	sb.WriteString("      \"explanation\": \"explanation of the error\",\n")
	sb.WriteString("      \"position\": \"line/sentence number\"\n")
	sb.WriteString("    }\n")
	sb.WriteString("  ],\n")
	sb.WriteString("  \"total_mistakes\": number,\n")
	sb.WriteString(`  "analysis_type": "` + analysisType + "\"\n")
	sb.WriteString("}\n")
	return sb.String()
}
