package cloud

import (
	"context"
	"encoding/base64"
	"strconv"
)

const ProviderVultr = "vultr"

func init() {
	Register(&vultrProvider{client: newRestClient("https://api.vultr.com/v2")})
}

type vultrProvider struct {
	client *restClient
}

func (p *vultrProvider) Name() string {
	return ProviderVultr
}

// GetAccountInfo calls GET /v2/account.
func (p *vultrProvider) GetAccountInfo(ctx context.Context, apiKey string) (*AccountInfo, error) {
	var result struct {
		Account struct {
			Email          string  `json:"email"`
			Balance        float64 `json:"balance"`
			PendingCharges float64 `json:"pending_charges"`
		} `json:"account"`
	}
	if err := p.client.do(ctx, "GET", "/account", apiKey, nil, &result); err != nil {
		return nil, err
	}
	return &AccountInfo{
		Email:          result.Account.Email,
		Balance:        result.Account.Balance,
		PendingCharges: result.Account.PendingCharges,
	}, nil
}

// CreateInstance calls POST /v2/instances. Vultr derives disk size from the
// plan and generates its own root password, so DiskGB and RootPassword are
// ignored here.
func (p *vultrProvider) CreateInstance(ctx context.Context, apiKey string, params CreateInstanceParams) (*Instance, error) {
	body := map[string]interface{}{
		"region":      params.Region,
		"plan":        params.Plan,
		"label":       params.Name,
		"hostname":    params.Name,
		"enable_ipv6": params.EnableIPv6,
	}
	if params.Image != "" {
		if osID, err := strconv.Atoi(params.Image); err == nil {
			body["os_id"] = osID
		} else {
			body["image_id"] = params.Image
		}
	}
	if params.UserData != "" {
		body["user_data"] = base64.StdEncoding.EncodeToString([]byte(params.UserData))
	}

	var result struct {
		Instance struct {
			ID       string `json:"id"`
			Label    string `json:"label"`
			MainIP   string `json:"main_ip"`
			V6MainIP string `json:"v6_main_ip"`
			Status   string `json:"status"`
		} `json:"instance"`
	}
	if err := p.client.do(ctx, "POST", "/instances", apiKey, body, &result); err != nil {
		return nil, err
	}
	return &Instance{
		ID:     result.Instance.ID,
		Name:   result.Instance.Label,
		IPv4:   result.Instance.MainIP,
		IPv6:   result.Instance.V6MainIP,
		Status: result.Instance.Status,
	}, nil
}

func (p *vultrProvider) Classify(info *AccountInfo, err error) (Status, string) {
	if err != nil {
		return classifyError(err)
	}
	if info != nil && info.Suspended {
		return StatusUnhealthy, "account suspended"
	}
	return StatusHealthy, "ok"
}
