package metadomain

import (
	"strconv"
)

// InsightRow representa uma linha bruta do endpoint /act_<id>/insights.
// Os valores numéricos chegam como texto no Graph API.
type InsightRow struct {
	AccountID         string   `json:"account_id"`
	AccountName       string   `json:"account_name"`
	Impressions       string   `json:"impressions"`
	Clicks            string   `json:"clicks"`
	Spend             string   `json:"spend"`
	Reach             string   `json:"reach"`
	DateStart         string   `json:"date_start"`
	DateStop          string   `json:"date_stop"`
	Actions           []Action `json:"actions"`
	Age               string   `json:"age,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	PublisherPlatform string   `json:"publisher_platform,omitempty"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// LeadActionTypes são os action_types do Graph API contabilizados como lead
var LeadActionTypes = map[string]struct{}{
	"lead":                               {},
	"onsite_conversion.lead_grouped":     {},
	"offsite_conversion.fb_pixel_lead":   {},
	"onsite_conversion.messaging_first_reply": {},
}

// LeadCount soma as actions que representam leads
func (r *InsightRow) LeadCount() int {
	total := 0
	for _, action := range r.Actions {
		if _, ok := LeadActionTypes[action.ActionType]; ok {
			v, err := strconv.Atoi(action.Value)
			if err != nil {
				continue
			}
			total += v
		}
	}

	return total
}

// InsightsResponse é o envelope paginado do Graph API
type InsightsResponse struct {
	Data   []InsightRow `json:"data"`
	Paging Paging       `json:"paging"`
}

type Paging struct {
	Next string `json:"next,omitempty"`
	Cursors struct {
		Before string `json:"before,omitempty"`
		After  string `json:"after,omitempty"`
	} `json:"cursors,omitempty"`
}
