package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"samhotel-api/internal/pkg/clock"
	"samhotel-api/internal/pkg/config"
	"samhotel-api/internal/pkg/errs"
)

// DarajaClient talks to the Safaricom Daraja sandbox/production API to issue
// STK push charges. The stdlib HTTP client is deliberate: the API is two
// plain JSON endpoints and the official SDKs lag behind it.
type DarajaClient struct {
	cfg    config.MpesaConfig
	client *http.Client
	clock  clock.Clock
}

func NewDarajaClient(cfg config.MpesaConfig, clk clock.Clock) *DarajaClient {
	return &DarajaClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		clock:  clk,
	}
}

// Enabled reports whether credentials are configured; without them the push
// is skipped entirely.
func (c *DarajaClient) Enabled() bool {
	return c.cfg.ConsumerKey != "" && c.cfg.ConsumerSecret != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *DarajaClient) accessToken(ctx context.Context) (string, error) {
	url := c.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.Wrapf(errs.New("unexpected status"), "token endpoint returned %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", errs.Wrap(err, "failed to decode token response")
	}
	if tr.AccessToken == "" {
		return "", errs.New("token response carried no access token")
	}
	return tr.AccessToken, nil
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// Push issues an STK push for the given amount (whole currency units) and
// returns the raw gateway response for persistence alongside the booking.
func (c *DarajaClient) Push(ctx context.Context, phone, amount, reference string) (json.RawMessage, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	msisdn, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	ts := c.clock.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString([]byte(c.cfg.ShortCode + c.cfg.Passkey + ts))

	payload := stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         ts,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            msisdn,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       msisdn,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  reference,
		TransactionDesc:   "Room booking payment",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode push request")
	}

	url := c.cfg.BaseURL + "/mpesa/stkpush/v1/processrequest"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "push request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read push response")
	}
	if !json.Valid(raw) {
		return nil, errs.New("push response is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

var ErrInvalidPhone = errs.New("phone number cannot be converted to MSISDN format")

// NormalizePhone converts local Kenyan formats to the 2547XXXXXXXX MSISDN the
// gateway expects. Accepted inputs: "07XXXXXXXX", "01XXXXXXXX", "+2547...",
// "2547..." and the same with spaces or dashes.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.TrimPrefix(strings.TrimSpace(phone), "+"))

	switch {
	case len(cleaned) == 12 && strings.HasPrefix(cleaned, "254"):
		return cleaned, nil
	case len(cleaned) == 10 && (strings.HasPrefix(cleaned, "07") || strings.HasPrefix(cleaned, "01")):
		return "254" + cleaned[1:], nil
	case len(cleaned) == 9 && (strings.HasPrefix(cleaned, "7") || strings.HasPrefix(cleaned, "1")):
		return "254" + cleaned, nil
	default:
		return "", ErrInvalidPhone
	}
}

// AmountForPush renders cents as whole currency units, rounding up so the
// charge never undershoots the booking total.
func AmountForPush(cents int64) string {
	return strconv.FormatInt((cents+99)/100, 10)
}
