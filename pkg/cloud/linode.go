package cloud

import (
	"context"
	"strconv"
)

const ProviderLinode = "linode"

func init() {
	Register(&linodeProvider{client: newRestClient("https://api.linode.com/v4")})
}

type linodeProvider struct {
	client *restClient
}

func (p *linodeProvider) Name() string {
	return ProviderLinode
}

// GetAccountInfo calls GET /v4/account.
func (p *linodeProvider) GetAccountInfo(ctx context.Context, apiKey string) (*AccountInfo, error) {
	var result struct {
		Email   string  `json:"email"`
		Balance float64 `json:"balance"`
		ActivePromotions []struct {
			Summary string `json:"summary"`
		} `json:"active_promotions"`
	}
	if err := p.client.do(ctx, "GET", "/account", apiKey, nil, &result); err != nil {
		return nil, err
	}
	return &AccountInfo{
		Email:   result.Email,
		Balance: result.Balance,
	}, nil
}

// CreateInstance calls POST /v4/linode/instances.
func (p *linodeProvider) CreateInstance(ctx context.Context, apiKey string, params CreateInstanceParams) (*Instance, error) {
	body := map[string]interface{}{
		"label":     params.Name,
		"region":    params.Region,
		"type":      params.Plan,
		"image":     params.Image,
		"root_pass": params.RootPassword,
		"booted":    true,
	}

	var result struct {
		ID     int64    `json:"id"`
		Label  string   `json:"label"`
		Status string   `json:"status"`
		IPv4   []string `json:"ipv4"`
		IPv6   string   `json:"ipv6"`
	}
	if err := p.client.do(ctx, "POST", "/linode/instances", apiKey, body, &result); err != nil {
		return nil, err
	}

	instance := &Instance{
		ID:                  strconv.FormatInt(result.ID, 10),
		Name:                result.Label,
		IPv6:                result.IPv6,
		Status:              result.Status,
		RootPasswordApplied: true,
	}
	if len(result.IPv4) > 0 {
		instance.IPv4 = result.IPv4[0]
	}
	return instance, nil
}

func (p *linodeProvider) Classify(info *AccountInfo, err error) (Status, string) {
	if err != nil {
		return classifyError(err)
	}
	return StatusHealthy, "ok"
}
