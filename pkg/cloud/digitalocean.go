package cloud

import (
	"context"
	"fmt"
	"strconv"
)

const ProviderDigitalOcean = "digitalocean"

func init() {
	Register(&digitalOceanProvider{client: newRestClient("https://api.digitalocean.com/v2")})
}

type digitalOceanProvider struct {
	client *restClient
}

func (p *digitalOceanProvider) Name() string {
	return ProviderDigitalOcean
}

// GetAccountInfo calls GET /v2/account. DigitalOcean reports an explicit
// account status; "locked" means the account is unusable even though the
// call itself succeeds.
func (p *digitalOceanProvider) GetAccountInfo(ctx context.Context, apiKey string) (*AccountInfo, error) {
	var result struct {
		Account struct {
			Email  string `json:"email"`
			Status string `json:"status"`
		} `json:"account"`
	}
	if err := p.client.do(ctx, "GET", "/account", apiKey, nil, &result); err != nil {
		return nil, err
	}
	return &AccountInfo{
		Email:         result.Account.Email,
		AccountStatus: result.Account.Status,
		Suspended:     result.Account.Status == "locked",
	}, nil
}

// CreateInstance calls POST /v2/droplets. DigitalOcean mails the root
// password instead of accepting one, so RootPassword is ignored here.
func (p *digitalOceanProvider) CreateInstance(ctx context.Context, apiKey string, params CreateInstanceParams) (*Instance, error) {
	body := map[string]interface{}{
		"name":   params.Name,
		"region": params.Region,
		"size":   params.Plan,
		"image":  params.Image,
		"ipv6":   params.EnableIPv6,
	}
	if params.UserData != "" {
		body["user_data"] = params.UserData
	}

	var result struct {
		Droplet struct {
			ID       int64  `json:"id"`
			Name     string `json:"name"`
			Status   string `json:"status"`
			Networks struct {
				V4 []struct {
					IPAddress string `json:"ip_address"`
					Type      string `json:"type"`
				} `json:"v4"`
				V6 []struct {
					IPAddress string `json:"ip_address"`
					Type      string `json:"type"`
				} `json:"v6"`
			} `json:"networks"`
		} `json:"droplet"`
	}
	if err := p.client.do(ctx, "POST", "/droplets", apiKey, body, &result); err != nil {
		return nil, err
	}

	instance := &Instance{
		ID:     strconv.FormatInt(result.Droplet.ID, 10),
		Name:   result.Droplet.Name,
		Status: result.Droplet.Status,
	}
	for _, net := range result.Droplet.Networks.V4 {
		if net.Type == "public" {
			instance.IPv4 = net.IPAddress
			break
		}
	}
	for _, net := range result.Droplet.Networks.V6 {
		if net.Type == "public" {
			instance.IPv6 = net.IPAddress
			break
		}
	}
	return instance, nil
}

func (p *digitalOceanProvider) Classify(info *AccountInfo, err error) (Status, string) {
	if err != nil {
		return classifyError(err)
	}
	if info != nil && info.Suspended {
		return StatusUnhealthy, fmt.Sprintf("account status is %s", info.AccountStatus)
	}
	return StatusHealthy, "ok"
}
