package googledomain

// SearchRequest é o payload do endpoint googleAds:search
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

// SearchResponse é o envelope paginado das consultas GAQL
type SearchResponse struct {
	Results       []Result `json:"results"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}

// Result representa uma linha retornada por uma consulta GAQL.
// Os inteiros de 64 bits chegam como texto na API REST.
type Result struct {
	Customer         *Customer         `json:"customer,omitempty"`
	Campaign         *Campaign         `json:"campaign,omitempty"`
	Metrics          *Metrics          `json:"metrics,omitempty"`
	Segments         *Segments         `json:"segments,omitempty"`
	AdGroupCriterion *AdGroupCriterion `json:"adGroupCriterion,omitempty"`
	ConversionAction *ConversionAction `json:"conversionAction,omitempty"`
}

type Customer struct {
	ID              string `json:"id,omitempty"`
	DescriptiveName string `json:"descriptiveName,omitempty"`
}

type Campaign struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

type Metrics struct {
	Impressions string  `json:"impressions,omitempty"`
	Clicks      string  `json:"clicks,omitempty"`
	CostMicros  string  `json:"costMicros,omitempty"`
	Conversions float64 `json:"conversions,omitempty"`
}

type Segments struct {
	Date          string `json:"date,omitempty"`
	AdNetworkType string `json:"adNetworkType,omitempty"`
}

type AdGroupCriterion struct {
	AgeRange *AgeRange `json:"ageRange,omitempty"`
	Gender   *Gender   `json:"gender,omitempty"`
}

type AgeRange struct {
	Type string `json:"type,omitempty"`
}

type Gender struct {
	Type string `json:"type,omitempty"`
}

type ConversionAction struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// ListAccessibleCustomersResponse é a resposta de customers:listAccessibleCustomers
type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}
