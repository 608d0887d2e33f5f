package nerhttp

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client calls an external named-entity recognition service over HTTP and
// maps its labels onto the analyzer's entity fields. Labels without a
// mapping are dropped.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type recognizeRequest struct {
	Text string `json:"text"`
}

type recognizeResponse struct {
	Entities []recognizedEntity `json:"entities"`
}

type recognizedEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

var labelFields = map[string]string{
	"PERSON": "person_entities",
	"ORG":    "organization_entities",
	"GPE":    "location_entities",
	"LOC":    "location_entities",
	"MONEY":  "financial_entities",
}

func (c *Client) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	var resp recognizeResponse
	if err := c.postJSON(ctx, "/v1/entities", recognizeRequest{Text: text}, &resp, "recognize"); err != nil {
		return nil, err
	}

	fields := make(map[string][]string)
	for _, ent := range resp.Entities {
		field, ok := labelFields[strings.ToUpper(ent.Label)]
		if !ok {
			continue
		}
		value := strings.TrimSpace(ent.Text)
		if value == "" {
			continue
		}
		fields[field] = append(fields[field], value)
	}
	return fields, nil
}
