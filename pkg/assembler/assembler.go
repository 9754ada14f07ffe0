// Package assembler builds the four-table dashboard store from raw
// extraction data, enriching it through the generative service. Every
// enrichment facet follows the same contract: one attempt, parse the
// first JSON found in the response, fall back to a fixed literal on any
// failure. Facets fail independently.
package assembler

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/dates"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/extract"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/jsonutil"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/llm"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/models"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/prompts"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/remap"
	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/tabular"
)

// maxMessageSample bounds how many farmer messages are quoted in
// enrichment prompts.
const maxMessageSample = 5

// importActivity is the recent-activities entry every assembled
// producer starts with.
const importActivity = "Data imported from producer records"

// Assembler turns raw extraction data into a tabular store.
type Assembler struct {
	client llm.Client
	logger *zap.Logger
	now    func() time.Time
}

// New creates an Assembler using the given enrichment client.
func New(client llm.Client, logger *zap.Logger) *Assembler {
	return &Assembler{
		client: client,
		logger: logger.Named("assembler"),
		now:    time.Now,
	}
}

// WithClock overrides the time source; tests use it to pin "today".
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// ProducerSummary is the per-producer activity rollup derived before
// enrichment.
type ProducerSummary struct {
	ExternalID    string
	TotalImages   int
	TotalMessages int
	LastActive    string // empty when no date parsed
}

// Summarize derives per-producer activity summaries in external-id
// order. LastActive is the most recent of the producer's image creation
// dates and message query times.
func Summarize(data extract.RawData) []ProducerSummary {
	externals := make([]string, 0, len(data))
	for id := range data {
		externals = append(externals, id)
	}
	sort.Strings(externals)

	summaries := make([]ProducerSummary, 0, len(externals))
	for _, id := range externals {
		raw := data[id]

		var stamps []string
		for _, img := range raw.TreeImages {
			stamps = append(stamps, img.CreatedDate)
		}
		for _, msg := range raw.ChatHistory {
			stamps = append(stamps, msg.QueryTime)
		}
		lastActive, _ := dates.MostRecent(stamps)

		summaries = append(summaries, ProducerSummary{
			ExternalID:    id,
			TotalImages:   raw.TotalImages,
			TotalMessages: raw.TotalChatMessages,
			LastActive:    lastActive,
		})
	}
	return summaries
}

// Assemble runs the full pipeline: summaries, identifier remapping,
// enrichment of every facet, chat materialization. The returned store
// is ready to persist.
func (a *Assembler) Assemble(ctx context.Context, data extract.RawData) *tabular.Store {
	summaries := Summarize(data)

	remapper := remap.New()
	for _, s := range summaries {
		remapper.Assign(s.ExternalID)
	}

	store := &tabular.Store{
		Cooperative: a.CooperativeInfo(ctx, len(summaries)),
		Aggregate: models.Aggregate{
			MonthlyYields:      a.MonthlyYields(ctx, summaries),
			DiseaseReports:     a.DiseaseReports(ctx, data),
			TrainingAttendance: a.TrainingAttendance(ctx),
			AIInsights:         a.Insights(ctx, data, summaries),
		},
	}

	today := a.now().Format(dates.Canonical)
	for _, s := range summaries {
		raw := data[s.ExternalID]
		details := a.ProducerDetails(ctx, s.ExternalID, raw)
		id, _ := remapper.Lookup(s.ExternalID)

		lastActive := s.LastActive
		if lastActive == "" {
			lastActive = today
		}

		store.Producers = append(store.Producers, models.Producer{
			ID:               id,
			ExternalID:       s.ExternalID,
			Name:             details.Name,
			Village:          details.Village,
			Age:              details.Age,
			JoinDate:         details.JoinDate,
			FarmSizeHectares: details.FarmSizeHectares,
			NumTrees:         details.NumTrees,
			Phone:            details.Phone,
			FarmImages:       []string{},
			YieldHistory:     details.YieldHistory,
			EstimatedYield:   details.EstimatedYield,
			RecentActivities: []models.Activity{{Date: today, Activity: importActivity}},
			TreeHealth:       details.TreeHealth,
			SoilQuality:      details.SoilQuality,
			LastActive:       lastActive,
		})
	}

	store.ChatThreads = a.BuildChatThreads(ctx, data, remapper)
	return store
}

// CooperativeInfo requests the cooperative profile from the enrichment
// service. TotalMembers is always the derived producer count, whatever
// the response says.
func (a *Assembler) CooperativeInfo(ctx context.Context, memberCount int) models.Cooperative {
	response, err := a.client.GenerateResponse(ctx,
		prompts.BuildCooperativeInfo(memberCount), prompts.SystemDataSpecialist)
	if err != nil {
		a.logger.Warn("cooperative info enrichment failed, using fallback", zap.Error(err))
		return fallbackCooperative(memberCount)
	}

	wire, err := llm.ParseJSONResponse[cooperativeWire](response)
	if err != nil {
		a.logger.Warn("cooperative info response unparsable, using fallback", zap.Error(err))
		return fallbackCooperative(memberCount)
	}

	coop := models.Cooperative{
		Name:          jsonutil.FlexibleString(wire.Name),
		Location:      jsonutil.FlexibleString(wire.Location),
		Established:   jsonutil.FlexibleInt(wire.Established),
		TotalMembers:  memberCount,
		ActiveMembers: jsonutil.FlexibleInt(wire.ActiveMembers),
		TotalHectares: jsonutil.FlexibleFloat(wire.TotalHectares),
		Certification: wire.Certification,
	}
	if coop.ActiveMembers == 0 {
		coop.ActiveMembers = memberCount
	}
	return coop
}

// MonthlyYields requests the monthly yield series.
func (a *Assembler) MonthlyYields(ctx context.Context, summaries []ProducerSummary) map[string]any {
	totalImages, totalMessages := 0, 0
	for _, s := range summaries {
		totalImages += s.TotalImages
		totalMessages += s.TotalMessages
	}
	avgMessages := 0.0
	if len(summaries) > 0 {
		avgMessages = float64(totalMessages) / float64(len(summaries))
	}

	response, err := a.client.GenerateResponse(ctx,
		prompts.BuildMonthlyYields(len(summaries), totalImages*100, avgMessages),
		prompts.SystemDataScientist)
	if err != nil {
		a.logger.Warn("monthly yields enrichment failed, using fallback", zap.Error(err))
		return fallbackMonthlyYields()
	}

	yields, err := llm.ParseJSONResponse[map[string]any](response)
	if err != nil {
		a.logger.Warn("monthly yields response unparsable, using fallback", zap.Error(err))
		return fallbackMonthlyYields()
	}
	return yields
}

// DiseaseReports requests disease case counts, using whatever
// disease-adjacent image metadata the extraction found.
func (a *Assembler) DiseaseReports(ctx context.Context, data extract.RawData) map[string]int {
	response, err := a.client.GenerateResponse(ctx,
		prompts.BuildDiseaseReports(diseaseMetadata(data)), prompts.SystemPathologist)
	if err != nil {
		a.logger.Warn("disease reports enrichment failed, using fallback", zap.Error(err))
		return fallbackDiseaseReports()
	}

	parsed, err := llm.ParseJSONResponse[map[string]float64](response)
	if err != nil {
		a.logger.Warn("disease reports response unparsable, using fallback", zap.Error(err))
		return fallbackDiseaseReports()
	}

	reports := make(map[string]int, len(parsed))
	for disease, count := range parsed {
		reports[disease] = int(count)
	}
	return reports
}

// TrainingAttendance requests training attendance percentages.
func (a *Assembler) TrainingAttendance(ctx context.Context) map[string]float64 {
	response, err := a.client.GenerateResponse(ctx,
		prompts.BuildTrainingAttendance(), prompts.SystemCoordinator)
	if err != nil {
		a.logger.Warn("training attendance enrichment failed, using fallback", zap.Error(err))
		return fallbackTrainingAttendance()
	}

	attendance, err := llm.ParseJSONResponse[map[string]float64](response)
	if err != nil {
		a.logger.Warn("training attendance response unparsable, using fallback", zap.Error(err))
		return fallbackTrainingAttendance()
	}
	return attendance
}

// Insights requests the free-text farm insights. The response is used
// verbatim; only transport failures fall back.
func (a *Assembler) Insights(ctx context.Context, data extract.RawData, summaries []ProducerSummary) string {
	in := prompts.InsightsInput{
		TotalProducers: len(summaries),
		LeafConditions: leafConditionCounts(data),
		MessageSample:  sampleQueries(data, maxMessageSample),
	}
	for _, s := range summaries {
		in.TotalImages += s.TotalImages
		in.TotalMessages += s.TotalMessages
	}

	response, err := a.client.GenerateResponse(ctx,
		prompts.BuildInsights(in), prompts.SystemAgronomist)
	if err != nil {
		a.logger.Warn("insights enrichment failed, using fallback", zap.Error(err))
		return fallbackInsights
	}
	return response
}

// ProducerDetails requests the synthetic profile for one producer.
func (a *Assembler) ProducerDetails(ctx context.Context, externalID string, raw extract.RawProducer) producerDetails {
	var sample []string
	for i, msg := range raw.ChatHistory {
		if i >= 3 || msg.Query == "" {
			break
		}
		sample = append(sample, msg.Query)
	}

	response, err := a.client.GenerateResponse(ctx,
		prompts.BuildProducerDetails(externalID, raw.TotalImages, raw.TotalChatMessages, sample),
		prompts.SystemDataSpecialist)
	if err != nil {
		a.logger.Warn("producer details enrichment failed, using fallback",
			zap.String("producer", externalID), zap.Error(err))
		return fallbackProducerDetails(externalID, raw.TotalImages)
	}

	wire, err := llm.ParseJSONResponse[producerDetailsWire](response)
	if err != nil {
		a.logger.Warn("producer details response unparsable, using fallback",
			zap.String("producer", externalID), zap.Error(err))
		return fallbackProducerDetails(externalID, raw.TotalImages)
	}

	details := producerDetails{
		Name:             jsonutil.FlexibleString(wire.Name),
		Village:          jsonutil.FlexibleString(wire.Village),
		Age:              jsonutil.FlexibleInt(wire.Age),
		JoinDate:         jsonutil.FlexibleString(wire.JoinDate),
		FarmSizeHectares: jsonutil.FlexibleFloat(wire.FarmSizeHectares),
		NumTrees:         jsonutil.FlexibleInt(wire.NumTrees),
		Phone:            jsonutil.FlexibleString(wire.Phone),
		EstimatedYield:   jsonutil.FlexibleFloat(wire.EstimatedYield),
		TreeHealth:       wire.TreeHealth,
		SoilQuality:      wire.SoilQuality,
	}
	if len(wire.YieldHistory) > 0 {
		details.YieldHistory = make(map[string]float64, len(wire.YieldHistory))
		for year, value := range wire.YieldHistory {
			details.YieldHistory[year] = jsonutil.FlexibleFloat(value)
		}
	}
	return details
}

// BuildChatThreads flattens each producer's (query, response) pairs
// into ordered farmer/advisor messages. A pair's rows share the
// resolved date: the normalized query time, or today when it is
// missing or unparsable. When no producer has any messages, a
// placeholder conversation is generated (or the fixed literal is used
// if that fails too).
func (a *Assembler) BuildChatThreads(ctx context.Context, data extract.RawData, remapper *remap.Remapper) []models.ChatThread {
	today := a.now().Format(dates.Canonical)

	var threads []models.ChatThread
	for _, external := range remapper.Externals() {
		raw := data[external]
		if len(raw.ChatHistory) == 0 {
			continue
		}
		id, _ := remapper.Lookup(external)

		var messages []models.ChatMessage
		for _, msg := range raw.ChatHistory {
			date, ok := dates.Normalize(msg.QueryTime)
			if !ok {
				date = today
			}
			messages = append(messages, models.ChatMessage{
				Date:    date,
				From:    models.MessageFromFarmer,
				Message: msg.Query,
			})
			if msg.Response != "" {
				messages = append(messages, models.ChatMessage{
					Date:    date,
					From:    models.MessageFromAdvisor,
					Message: msg.Response,
				})
			}
		}
		threads = append(threads, models.ChatThread{ProducerID: id, Messages: messages})
	}

	if len(threads) > 0 {
		return threads
	}
	return []models.ChatThread{a.placeholderChat(ctx)}
}

// placeholderChat generates a small synthetic conversation so the store
// is never empty of chat content.
func (a *Assembler) placeholderChat(ctx context.Context) models.ChatThread {
	response, err := a.client.GenerateResponse(ctx,
		prompts.BuildPlaceholderChat(), prompts.SystemDataSpecialist)
	if err != nil {
		a.logger.Warn("placeholder chat enrichment failed, using fallback", zap.Error(err))
		return fallbackChatThread()
	}

	rows, err := llm.ParseJSONResponse[[]placeholderMessage](response)
	if err != nil || len(rows) == 0 {
		a.logger.Warn("placeholder chat response unparsable, using fallback", zap.Error(err))
		return fallbackChatThread()
	}

	thread := models.ChatThread{ProducerID: 1}
	for _, row := range rows {
		thread.Messages = append(thread.Messages, models.ChatMessage{
			Date:    row.Date,
			From:    row.From,
			Message: row.Message,
		})
	}
	return thread
}

// producerDetails is the enriched profile for one producer after
// flexible decoding.
type producerDetails struct {
	Name             string
	Village          string
	Age              int
	JoinDate         string
	FarmSizeHectares float64
	NumTrees         int
	Phone            string
	YieldHistory     map[string]float64
	EstimatedYield   float64
	TreeHealth       map[string]any
	SoilQuality      map[string]any
}

// Wire types keep scalar fields raw so jsonutil can absorb the number/
// string confusion generative responses exhibit.
type producerDetailsWire struct {
	Name             json.RawMessage            `json:"name"`
	Village          json.RawMessage            `json:"village"`
	Age              json.RawMessage            `json:"age"`
	JoinDate         json.RawMessage            `json:"join_date"`
	FarmSizeHectares json.RawMessage            `json:"farm_size_hectares"`
	NumTrees         json.RawMessage            `json:"num_trees"`
	Phone            json.RawMessage            `json:"phone"`
	YieldHistory     map[string]json.RawMessage `json:"yield_history"`
	EstimatedYield   json.RawMessage            `json:"estimated_yield"`
	TreeHealth       map[string]any             `json:"tree_health"`
	SoilQuality      map[string]any             `json:"soil_quality"`
}

type cooperativeWire struct {
	Name          json.RawMessage `json:"name"`
	Location      json.RawMessage `json:"location"`
	Established   json.RawMessage `json:"established"`
	TotalMembers  json.RawMessage `json:"total_members"`
	ActiveMembers json.RawMessage `json:"active_members"`
	TotalHectares json.RawMessage `json:"total_hectares"`
	Certification []string        `json:"certification"`
}

type placeholderMessage struct {
	ProducerID int    `json:"producer_id"`
	Date       string `json:"date"`
	From       string `json:"from"`
	Message    string `json:"message"`
}

// leafConditionCounts tallies the leaf_condition metadata across all
// extracted images.
func leafConditionCounts(data extract.RawData) map[string]int {
	counts := make(map[string]int)
	for _, raw := range data {
		for _, img := range raw.TreeImages {
			if condition, ok := img.Metadata["leaf_condition"]; ok && condition != "" {
				counts[condition]++
			}
		}
	}
	if len(counts) == 0 {
		return nil
	}
	return counts
}

// diseaseMetadata collects value counts for image metadata fields that
// look disease related.
func diseaseMetadata(data extract.RawData) map[string]map[string]int {
	relevant := []string{"disease", "health", "condition", "leaf"}

	info := make(map[string]map[string]int)
	for _, raw := range data {
		for _, img := range raw.TreeImages {
			for field, value := range img.Metadata {
				if value == "" || !containsAny(field, relevant) {
					continue
				}
				if info[field] == nil {
					info[field] = make(map[string]int)
				}
				info[field][value]++
			}
		}
	}
	if len(info) == 0 {
		return nil
	}
	return info
}

// sampleQueries takes up to limit farmer queries across producers, in
// external-id order for determinism.
func sampleQueries(data extract.RawData, limit int) []string {
	externals := make([]string, 0, len(data))
	for id := range data {
		externals = append(externals, id)
	}
	sort.Strings(externals)

	var sample []string
	for _, id := range externals {
		for _, msg := range data[id].ChatHistory {
			if msg.Query == "" {
				continue
			}
			sample = append(sample, msg.Query)
			if len(sample) >= limit {
				return sample
			}
		}
	}
	return sample
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
