package assembler

import (
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
)

// Fixed fallback content substituted whenever an enrichment call fails
// or returns unparsable JSON. These literals are part of the assembly
// contract: a failed facet degrades to them, it never aborts the run.

const fallbackInsights = "Could not generate insights due to an error."

func fallbackMonthlyYields() map[string]any {
	return map[string]any{
		"months": []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		"2021":   []int{850, 720, 640, 590, 480, 420, 380, 450, 720, 980, 1050, 920},
		"2022":   []int{880, 750, 670, 610, 500, 440, 400, 480, 750, 1020, 1080, 950},
		"2023":   []int{910, 780, 700, 630, 520, 460, 0, 0, 0, 0, 0, 0},
	}
}

func fallbackDiseaseReports() map[string]int {
	return map[string]int{
		"black_pod":     32,
		"swollen_shoot": 18,
		"capsid_damage": 26,
		"stem_borer":    14,
		"other":         11,
	}
}

func fallbackTrainingAttendance() map[string]float64 {
	return map[string]float64{
		"pest_management":       88,
		"harvesting_techniques": 72,
		"fermentation_workshop": 65,
		"sustainable_practices": 93,
		"quality_control":       79,
	}
}

func fallbackCooperative(memberCount int) models.Cooperative {
	return models.Cooperative{
		Name:          "Cocoa Producers Cooperative",
		Location:      "Ivory Coast",
		Established:   2010,
		TotalMembers:  memberCount,
		ActiveMembers: memberCount,
		TotalHectares: 500,
		Certification: []string{"Organic", "Fairtrade"},
	}
}

func fallbackProducerDetails(externalID string, totalImages int) producerDetails {
	return producerDetails{
		Name:             "Producer " + externalID,
		Village:          "Unknown",
		Age:              40,
		JoinDate:         "2020-01-01",
		FarmSizeHectares: 5.0,
		NumTrees:         totalImages * 100,
		Phone:            "+225 00000000",
		YieldHistory:     map[string]float64{"2020": 3000, "2021": 3200, "2022": 3400},
		EstimatedYield:   3600,
		TreeHealth: map[string]any{
			"healthy":         75,
			"minor_issues":    20,
			"needs_attention": 5,
		},
		SoilQuality: map[string]any{
			"pH":         6.5,
			"nitrogen":   "Medium",
			"phosphorus": "Medium",
			"potassium":  "Medium",
		},
	}
}

// fallbackChatThread is the placeholder conversation written when no
// real messages exist anywhere and the generated replacement also
// fails.
func fallbackChatThread() models.ChatThread {
	return models.ChatThread{
		ProducerID: 1,
		Messages: []models.ChatMessage{
			{Date: "2023-07-01", From: models.MessageFromFarmer, Message: "Hello, I have a question about my cocoa trees."},
			{Date: "2023-07-01", From: models.MessageFromAdvisor, Message: "Hello! What would you like to know?"},
			{Date: "2023-07-01", From: models.MessageFromFarmer, Message: "Some leaves are turning yellow. What should I do?"},
			{Date: "2023-07-01", From: models.MessageFromAdvisor, Message: "That could be a sign of nutrient deficiency. Try adding some nitrogen-rich fertilizer."},
		},
	}
}
