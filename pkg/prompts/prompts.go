// Package prompts builds the enrichment prompts sent to the generative
// service during assembly. Each facet has its own prompt and its own
// system role; callers pair them with fixed fallbacks.
package prompts

import (
	"fmt"
	"strings"
)

// System roles per enrichment facet.
const (
	SystemAgronomist     = "You are an agricultural expert specializing in cocoa farming."
	SystemDataScientist  = "You are a data scientist specializing in agricultural yield forecasting."
	SystemPathologist    = "You are a plant pathologist specializing in cocoa diseases."
	SystemDataSpecialist = "You are a data specialist for agricultural cooperatives."
	SystemCoordinator    = "You are a training coordinator for agricultural cooperatives."
)

// InsightsInput summarizes the extracted data for the insights prompt.
type InsightsInput struct {
	TotalProducers int
	TotalImages    int
	TotalMessages  int
	LeafConditions map[string]int
	MessageSample  []string
}

// BuildInsights creates the free-text farm insights prompt.
func BuildInsights(in InsightsInput) string {
	var b strings.Builder

	b.WriteString("Analyze the following cocoa farmer data and provide insights:\n\n")
	fmt.Fprintf(&b, "Total Producers: %d\n", in.TotalProducers)
	fmt.Fprintf(&b, "Total Images Uploaded: %d\n", in.TotalImages)
	fmt.Fprintf(&b, "Total Messages: %d\n\n", in.TotalMessages)

	if len(in.LeafConditions) > 0 {
		b.WriteString("Leaf conditions from images:\n")
		for condition, count := range in.LeafConditions {
			fmt.Fprintf(&b, "- %s: %d\n", condition, count)
		}
		b.WriteString("\n")
	}

	if len(in.MessageSample) > 0 {
		b.WriteString("Sample of farmer messages:\n")
		for _, msg := range in.MessageSample {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
		b.WriteString("\n")
	}

	b.WriteString("Based on this data, provide:\n")
	b.WriteString("1. A summary of the current state of the cocoa farms\n")
	b.WriteString("2. Key health issues that might be present\n")
	b.WriteString("3. Recommendations for improving farm productivity\n")
	b.WriteString("4. Estimated yield potential based on activity levels\n")

	return b.String()
}

// BuildMonthlyYields creates the monthly yield data prompt.
func BuildMonthlyYields(totalProducers, estimatedTrees int, avgMessages float64) string {
	var b strings.Builder

	b.WriteString("Generate realistic monthly cocoa yield data for a cooperative with:\n")
	fmt.Fprintf(&b, "- %d farmers\n", totalProducers)
	fmt.Fprintf(&b, "- Approximately %d trees total\n", estimatedTrees)
	fmt.Fprintf(&b, "- Average of %.1f messages per farmer\n\n", avgMessages)
	b.WriteString("Create monthly yield data (in kg) for the years 2021, 2022, and 2023 (up to the current month).\n")
	b.WriteString("Format the data as a JSON object with this structure:\n")
	b.WriteString(`{
    "months": ["Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"],
    "2021": [value1, value2, ...],
    "2022": [value1, value2, ...],
    "2023": [value1, value2, ...]
}` + "\n\n")
	b.WriteString("For 2023, include actual values only for months that have already occurred (the rest should be 0).\n")
	b.WriteString("The data should reflect seasonal patterns typical for cocoa farming in West Africa,\n")
	b.WriteString("with reasonable year-over-year growth based on improved farming practices.\n")

	return b.String()
}

// BuildDiseaseReports creates the disease report prompt from image
// metadata observations.
func BuildDiseaseReports(diseaseInfo map[string]map[string]int) string {
	var b strings.Builder

	b.WriteString("Based on the following image metadata from cocoa farms:\n\n")
	if len(diseaseInfo) == 0 {
		b.WriteString("No specific disease metadata available in the images.\n")
	} else {
		for field, values := range diseaseInfo {
			fmt.Fprintf(&b, "%s:\n", field)
			for value, count := range values {
				fmt.Fprintf(&b, "- %s: %d\n", value, count)
			}
		}
	}

	b.WriteString("\nGenerate realistic disease report data for common cocoa diseases in West Africa.\n")
	b.WriteString("Format your response as a JSON object with disease names as keys and the number of reported cases as values:\n\n")
	b.WriteString(`{
    "black_pod": X,
    "swollen_shoot": Y,
    "capsid_damage": Z,
    "stem_borer": W,
    "other": V
}` + "\n\n")
	b.WriteString("The total number of reports should be between 80-120, distributed realistically based on\n")
	b.WriteString("prevalence patterns typical for West African cocoa farms.\n")

	return b.String()
}

// BuildTrainingAttendance creates the training attendance prompt.
func BuildTrainingAttendance() string {
	return "Generate realistic training attendance percentages for 5 different training types " +
		"offered to cocoa farmers. Return a JSON object where keys are training types and " +
		"values are attendance percentages (0-100)."
}

// BuildCooperativeInfo creates the cooperative profile prompt.
func BuildCooperativeInfo(memberCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate realistic cooperative information for a cocoa producers' cooperative in West Africa with %d members.\n", memberCount)
	b.WriteString("Return a JSON object with:\n")
	b.WriteString("- name: A descriptive name for the cooperative\n")
	b.WriteString("- location: A specific region/country in West Africa known for cocoa\n")
	b.WriteString("- established: Year established (between 2000-2015)\n")
	fmt.Fprintf(&b, "- total_members: %d\n", memberCount)
	b.WriteString("- active_members: A realistic number of active members (slightly less than total)\n")
	b.WriteString("- total_hectares: Total hectares under cultivation\n")
	b.WriteString("- certification: A list of certifications the cooperative might have (2-4 certifications)\n")

	return b.String()
}

// BuildProducerDetails creates the per-producer profile prompt.
func BuildProducerDetails(externalID string, totalImages, totalMessages int, messageSample []string) string {
	var b strings.Builder

	b.WriteString("Generate realistic profile data for a cocoa farmer in West Africa with the following activity:\n")
	fmt.Fprintf(&b, "- Producer ID: %s\n", externalID)
	fmt.Fprintf(&b, "- Total images uploaded: %d\n", totalImages)
	fmt.Fprintf(&b, "- Total messages sent: %d\n\n", totalMessages)

	if len(messageSample) > 0 {
		b.WriteString("Sample messages from the producer:\n")
		for _, msg := range messageSample {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No message samples available.\n\n")
	}

	b.WriteString("Return a JSON object with the following fields:\n")
	b.WriteString("- name: A realistic name for a farmer in West Africa\n")
	b.WriteString("- village: A realistic village name in a cocoa growing region\n")
	b.WriteString("- age: A reasonable age (between 30-65)\n")
	b.WriteString("- join_date: When they joined the cooperative (between 2018-2022)\n")
	b.WriteString("- farm_size_hectares: Farm size (between 2-15 hectares)\n")
	b.WriteString("- num_trees: Number of cocoa trees (between 200-1200)\n")
	b.WriteString("- phone: A realistic West African phone number\n")
	b.WriteString("- yield_history: Yield history for 2020, 2021, and 2022 in kg\n")
	b.WriteString("- estimated_yield: Estimated yield for current year\n")
	b.WriteString("- tree_health: Percentage breakdown of tree health (healthy, minor_issues, needs_attention)\n")
	b.WriteString("- soil_quality: Soil quality information (pH, nitrogen, phosphorus, potassium)\n\n")
	b.WriteString("Make the data realistic and consistent with cocoa farming in West Africa.\n")

	return b.String()
}

// BuildPlaceholderChat creates the prompt used when the store would
// otherwise have no chat history at all.
func BuildPlaceholderChat() string {
	var b strings.Builder

	b.WriteString("Generate 5 realistic conversation exchanges between a cocoa farmer and an agricultural advisor.\n")
	b.WriteString("Each exchange should include a question from the farmer and a response from the advisor.\n")
	b.WriteString("Focus on common issues in cocoa farming like disease management, harvest timing, etc.\n\n")
	b.WriteString("Format as a JSON array of objects, each with:\n")
	b.WriteString("- producer_id: 1\n")
	b.WriteString("- date: a date in 2023 (YYYY-MM-DD format)\n")
	b.WriteString("- from: either \"farmer\" or \"advisor\"\n")
	b.WriteString("- message: the content of the message\n\n")
	b.WriteString("Make sure to alternate between farmer and advisor messages.\n")

	return b.String()
}
