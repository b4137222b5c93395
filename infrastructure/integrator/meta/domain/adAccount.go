package metadomain

type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

type BusinessManager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdAccountsResponse struct {
	Data   []AdAccount `json:"data"`
	Paging Paging      `json:"paging"`
}

type BusinessesResponse struct {
	Data   []BusinessManager `json:"data"`
	Paging Paging            `json:"paging"`
}

// CustomConversion representa uma conversão personalizada configurada na conta
type CustomConversion struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CustomEventType string `json:"custom_event_type"`
}

type CustomConversionsResponse struct {
	Data   []CustomConversion `json:"data"`
	Paging Paging             `json:"paging"`
}
