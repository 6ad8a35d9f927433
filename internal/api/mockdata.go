package api

import "github.com/gin-gonic/gin"

// Sample data served by the history/report endpoints. Nothing is persisted
// by contract, so these stand in for what a storage-backed deployment would
// return.

var sampleMCQHistory = []gin.H{
	{
		"id":            "1",
		"answer_key_id": "key_123",
		"subject":       "Mathematics",
		"date":          "2 hours ago",
		"total_students": 25,
		"average_score": 78.5,
		"status":        "Completed",
	},
	{
		"id":            "2",
		"answer_key_id": "key_124",
		"subject":       "Science",
		"date":          "1 day ago",
		"total_students": 30,
		"average_score": 82.3,
		"status":        "Completed",
	},
}

func sampleMCQReport(analysisID string) gin.H {
	return gin.H{
		"analysis_id":    analysisID,
		"subject":        "Mathematics Test",
		"timestamp":      "2025-01-22T10:30:00",
		"total_students": 25,
		"total_questions": 50,
		"summary": gin.H{
			"average_score":      38.5,
			"average_percentage": 77.0,
			"highest_score":      48,
			"lowest_score":       22,
			"grade_distribution": gin.H{
				"A+": 3,
				"A":  5,
				"B+": 8,
				"B":  6,
				"C":  2,
				"D":  1,
			},
		},
		"question_analysis": []gin.H{
			{
				"question_number":   1,
				"correct_responses": 23,
				"success_rate":      92.0,
				"difficulty":        "Easy",
			},
			{
				"question_number":   2,
				"correct_responses": 15,
				"success_rate":      60.0,
				"difficulty":        "Medium",
			},
		},
	}
}

var sampleAnalysisHistory = []gin.H{
	{
		"id":             "1",
		"filename":       "Essay_Assignment_1.pdf",
		"date":           "2 hours ago",
		"mistakes_found": 12,
		"status":         "Completed",
		"analysis_type":  "grammar_spelling",
		"language":       "english",
	},
	{
		"id":             "2",
		"filename":       "Research_Paper.docx",
		"date":           "1 day ago",
		"mistakes_found": 8,
		"status":         "Completed",
		"analysis_type":  "grammar_only",
		"language":       "english",
	},
	{
		"id":             "3",
		"filename":       "Student_Report.pdf",
		"date":           "3 days ago",
		"mistakes_found": 15,
		"status":         "Completed",
		"analysis_type":  "spelling_only",
		"language":       "english",
	},
}

func sampleAnalysisReport(analysisID string) gin.H {
	return gin.H{
		"analysis_id":    analysisID,
		"filename":       "Sample_Document.txt",
		"timestamp":      "2025-01-22T10:30:00",
		"analysis_type":  "grammar_spelling",
		"language":       "english",
		"total_mistakes": 5,
		"mistakes": []gin.H{
			{
				"type":        "grammar",
				"original":    "The students was happy",
				"corrected":   "The students were happy",
				"explanation": `Subject-verb disagreement. "Students" is plural, so use "were" instead of "was".`,
				"position":    "Line 1",
			},
			{
				"type":        "spelling",
				"original":    "recieve",
				"corrected":   "receive",
				"explanation": `Common spelling error. Remember "i before e except after c".`,
				"position":    "Line 3",
			},
			{
				"type":        "grammar",
				"original":    "Me and John went",
				"corrected":   "John and I went",
				"explanation": `Use "I" instead of "me" when it's the subject of the sentence.`,
				"position":    "Line 5",
			},
		},
		"summary": gin.H{
			"grammar_mistakes":  3,
			"spelling_mistakes": 2,
			"most_common_error": "Subject-verb disagreement",
		},
	}
}
