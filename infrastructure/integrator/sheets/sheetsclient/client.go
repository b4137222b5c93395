package sheetsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/pkg/requester"
)

// TokenSource fornece um access token válido do Google, renovado quando necessário
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// ValuesResponse é a resposta de spreadsheets/<id>/values/<range>
type ValuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

type Client interface {
	GetValues(ctx context.Context, spreadsheetID, valueRange string) ([][]string, error)
}

type SheetsClient struct {
	Cfg       *config.Config
	Requester *requester.Requester
	Tokens    TokenSource
}

func NewClient(cfg *config.Config, req *requester.Requester, tokens TokenSource) Client {
	return &SheetsClient{
		Cfg:       cfg,
		Requester: req,
		Tokens:    tokens,
	}
}

// GetValues lê as células do intervalo informado da planilha
func (c *SheetsClient) GetValues(ctx context.Context, spreadsheetID, valueRange string) ([][]string, error) {
	token, err := c.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	requestURL := fmt.Sprintf("%s/spreadsheets/%s/values/%s",
		c.Cfg.Sheets.URL, spreadsheetID, url.PathEscape(valueRange))

	body, err := c.Requester.Get(ctx, requestURL, header)
	if err != nil {
		logrus.WithError(err).WithField("spreadsheet_id", spreadsheetID).Error("Erro ao ler valores da planilha")
		return nil, err
	}

	var response ValuesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return response.Values, nil
}
