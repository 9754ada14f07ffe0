// Package seed provides a fixed sample dataset for an Ivorian cocoa
// cooperative, so the dashboard can run without object-store or
// enrichment access.
package seed

import (
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/tabular"
)

// Store returns the sample dataset as a ready-to-persist store:
// one cooperative, five producers, the aggregate rollups, and chat
// threads for the first three producers.
func Store() *tabular.Store {
	return &tabular.Store{
		Cooperative: models.Cooperative{
			Name:          "Coopérative Agricole de Côte d'Ivoire",
			Location:      "Aboisso, Ivory Coast",
			Established:   2008,
			TotalMembers:  150,
			ActiveMembers: 132,
			TotalHectares: 860,
			Certification: []string{"Rainforest Alliance", "UTZ", "Fairtrade"},
		},
		Producers:   producers(),
		Aggregate:   aggregate(),
		ChatThreads: chatThreads(),
	}
}

func producers() []models.Producer {
	return []models.Producer{
		{
			ID:               1,
			Name:             "Kouadio Konan",
			Village:          "Abengourou",
			Age:              45,
			JoinDate:         "2010-03-15",
			FarmSizeHectares: 5.2,
			NumTrees:         4200,
			Phone:            "+225 0701234567",
			FarmImages:       []string{},
			YieldHistory:     map[string]float64{"2020": 4800, "2021": 5100, "2022": 5300},
			EstimatedYield:   5500,
			RecentActivities: []models.Activity{
				{Date: "2023-06-15", Activity: "Applied fungicide treatment"},
				{Date: "2023-05-28", Activity: "Reported black pod disease in section 3"},
				{Date: "2023-05-10", Activity: "Completed pruning"},
			},
			TreeHealth: map[string]any{"healthy": 80, "minor_issues": 15, "needs_attention": 5},
			SoilQuality: map[string]any{
				"pH": 6.2, "nitrogen": "Medium", "phosphorus": "High", "potassium": "Medium",
			},
			LastActive: "2023-06-28",
		},
		{
			ID:               2,
			Name:             "Amara Bamba",
			Village:          "Divo",
			Age:              38,
			JoinDate:         "2012-07-22",
			FarmSizeHectares: 3.8,
			NumTrees:         3100,
			Phone:            "+225 0702345678",
			FarmImages:       []string{},
			YieldHistory:     map[string]float64{"2020": 3200, "2021": 3400, "2022": 3600},
			EstimatedYield:   3800,
			RecentActivities: []models.Activity{
				{Date: "2023-06-20", Activity: "Harvested central section"},
				{Date: "2023-06-05", Activity: "Applied organic fertilizer"},
				{Date: "2023-05-15", Activity: "Reported water shortage issues"},
			},
			TreeHealth: map[string]any{"healthy": 75, "minor_issues": 20, "needs_attention": 5},
			SoilQuality: map[string]any{
				"pH": 6.5, "nitrogen": "Low", "phosphorus": "Medium", "potassium": "High",
			},
			LastActive: "2023-06-25",
		},
		{
			ID:               3,
			Name:             "Fatou Diallo",
			Village:          "Daloa",
			Age:              41,
			JoinDate:         "2009-04-10",
			FarmSizeHectares: 6.5,
			NumTrees:         5200,
			Phone:            "+225 0703456789",
			FarmImages:       []string{},
			YieldHistory:     map[string]float64{"2020": 6100, "2021": 6400, "2022": 6200},
			EstimatedYield:   6700,
			RecentActivities: []models.Activity{
				{Date: "2023-06-18", Activity: "Installed new irrigation system"},
				{Date: "2023-06-02", Activity: "Completed soil testing"},
				{Date: "2023-05-20", Activity: "Added shade trees in section 2"},
			},
			TreeHealth: map[string]any{"healthy": 85, "minor_issues": 12, "needs_attention": 3},
			SoilQuality: map[string]any{
				"pH": 6.8, "nitrogen": "High", "phosphorus": "High", "potassium": "Medium",
			},
			LastActive: "2023-06-27",
		},
		{
			ID:               4,
			Name:             "Ibrahim Kone",
			Village:          "Aboisso",
			Age:              52,
			JoinDate:         "2008-09-05",
			FarmSizeHectares: 7.2,
			NumTrees:         5900,
			Phone:            "+225 0704567890",
			FarmImages:       []string{},
			YieldHistory:     map[string]float64{"2020": 6800, "2021": 6500, "2022": 7000},
			EstimatedYield:   7200,
			RecentActivities: []models.Activity{
				{Date: "2023-06-12", Activity: "Reported swollen shoot virus in eastern plot"},
				{Date: "2023-05-30", Activity: "Attended pest management workshop"},
				{Date: "2023-05-08", Activity: "Completed harvest of main section"},
			},
			TreeHealth: map[string]any{"healthy": 70, "minor_issues": 20, "needs_attention": 10},
			SoilQuality: map[string]any{
				"pH": 6.0, "nitrogen": "Medium", "phosphorus": "Low", "potassium": "Medium",
			},
			LastActive: "2023-06-22",
		},
		{
			ID:               5,
			Name:             "Aya Koné",
			Village:          "Agboville",
			Age:              35,
			JoinDate:         "2015-02-18",
			FarmSizeHectares: 4.3,
			NumTrees:         3500,
			Phone:            "+225 0705678901",
			FarmImages:       []string{},
			YieldHistory:     map[string]float64{"2020": 3600, "2021": 3900, "2022": 4200},
			EstimatedYield:   4500,
			RecentActivities: []models.Activity{
				{Date: "2023-06-25", Activity: "Applied eco-friendly pest control"},
				{Date: "2023-06-10", Activity: "Planted new seedlings in section 1"},
				{Date: "2023-05-22", Activity: "Reported good flowering on new trees"},
			},
			TreeHealth: map[string]any{"healthy": 88, "minor_issues": 10, "needs_attention": 2},
			SoilQuality: map[string]any{
				"pH": 6.7, "nitrogen": "High", "phosphorus": "Medium", "potassium": "High",
			},
			LastActive: "2023-06-29",
		},
	}
}

func aggregate() models.Aggregate {
	return models.Aggregate{
		MonthlyYields: map[string]any{
			"months": []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			"2021":   []int{850, 720, 640, 590, 480, 420, 380, 450, 720, 980, 1050, 920},
			"2022":   []int{880, 750, 670, 610, 500, 440, 400, 480, 750, 1020, 1080, 950},
			"2023":   []int{910, 780, 700, 630, 520, 460, 0, 0, 0, 0, 0, 0},
		},
		DiseaseReports: map[string]int{
			"black_pod":     32,
			"swollen_shoot": 18,
			"capsid_damage": 26,
			"stem_borer":    14,
			"other":         11,
		},
		TrainingAttendance: map[string]float64{
			"pest_management":       88,
			"harvesting_techniques": 72,
			"fermentation_workshop": 65,
			"sustainable_practices": 93,
			"quality_control":       79,
		},
	}
}

func chatThreads() []models.ChatThread {
	return []models.ChatThread{
		{
			ProducerID: 1,
			Messages: []models.ChatMessage{
				{Date: "2023-06-28", From: models.MessageFromFarmer, Message: "I've noticed some yellowing leaves on the east section."},
				{Date: "2023-06-28", From: models.MessageFromAdvisor, Message: "Can you send a photo of the affected trees?"},
				{Date: "2023-06-28", From: models.MessageFromFarmer, Message: "Yes, I've uploaded 3 images through the app."},
				{Date: "2023-06-29", From: models.MessageFromAdvisor, Message: "I've reviewed your images. This appears to be a minor nutrient deficiency. Please apply the recommended fertilizer we discussed last month."},
			},
		},
		{
			ProducerID: 2,
			Messages: []models.ChatMessage{
				{Date: "2023-06-25", From: models.MessageFromFarmer, Message: "When is the next pickup scheduled?"},
				{Date: "2023-06-25", From: models.MessageFromAdvisor, Message: "The next pickup is scheduled for July 5th. Please have your harvest ready by then."},
				{Date: "2023-06-25", From: models.MessageFromFarmer, Message: "Great, thank you for the information."},
			},
		},
		{
			ProducerID: 3,
			Messages: []models.ChatMessage{
				{Date: "2023-06-27", From: models.MessageFromFarmer, Message: "The new irrigation system is working well."},
				{Date: "2023-06-27", From: models.MessageFromAdvisor, Message: "Excellent news! Have you noticed any improvements in the trees?"},
				{Date: "2023-06-27", From: models.MessageFromFarmer, Message: "Yes, the younger trees are showing more growth."},
				{Date: "2023-06-27", From: models.MessageFromAdvisor, Message: "That's great. Please monitor water usage and log it in the app."},
			},
		},
	}
}
