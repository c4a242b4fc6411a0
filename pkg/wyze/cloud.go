package wyze

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	baseURLAuth = "https://auth-prod.api.wyze.com"
	baseURLAPI  = "https://api.wyzecam.com"
	appName     = "com.hualai.WyzeCam"
	appVersion  = "2.50.0"
)

type Cloud struct {
	client      *http.Client
	apiKey      string
	keyID       string
	accessToken string
	phoneID     string
}

type Camera struct {
	MAC          string `json:"mac"`
	IP           string `json:"ip"`
	Nickname     string `json:"nickname"`
	ProductModel string `json:"product_model"`
	IsOnline     bool   `json:"is_online"`
}

var models = map[string]string{
	"WYZEC1":         "Wyze Cam v1",
	"WYZEC1-JZ":      "Wyze Cam v2",
	"WYZE_CAKP2JFUS": "Wyze Cam v3",
	"HL_CAM3P":       "Wyze Cam v3 Pro",
	"HL_CAM4":        "Wyze Cam v4",
	"WYZECP1_JEF":    "Wyze Cam Pan",
	"HL_PANP":        "Wyze Cam Pan v2",
	"HL_PAN3":        "Wyze Cam Pan v3",
	"WVOD1":          "Wyze Video Doorbell",
	"WVOD2":          "Wyze Video Doorbell v2",
	"AN_RSCW":        "Wyze Video Doorbell Pro",
	"GW_BE1":         "Wyze Cam Floodlight",
	"HL_WCO2":        "Wyze Cam Outdoor",
	"HL_CFL2":        "Wyze Cam Floodlight v2",
	"LD_CFP":         "Wyze Battery Cam Pro",
}

func (c *Camera) ModelName() string {
	if name, ok := models[c.ProductModel]; ok {
		return name
	}
	return c.ProductModel
}

func NewCloud(apiKey, keyID string) *Cloud {
	return &Cloud{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		keyID:   keyID,
		phoneID: strings.ReplaceAll(uuid.NewString(), "-", "")[:16],
	}
}

type loginResponse struct {
	AccessToken string   `json:"access_token"`
	MFAOptions  []string `json:"mfa_options"`
}

type apiError struct {
	Code        string `json:"code"`
	ErrorCode   int    `json:"errorCode"`
	Msg         string `json:"msg"`
	Description string `json:"description"`
}

func (e *apiError) hasError() bool {
	if e.Code == "1" || e.Code == "0" {
		return false
	}
	return e.Code != "" || e.ErrorCode != 0
}

func (e *apiError) Error() string {
	code := e.Code
	if code == "" {
		code = fmt.Sprintf("%d", e.ErrorCode)
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Description
	}
	return fmt.Sprintf("wyze: login failed (code %s): %s", code, msg)
}

type AuthError struct {
	Message  string `json:"message"`
	NeedsMFA bool   `json:"needs_mfa,omitempty"`
	MFAType  string `json:"mfa_type,omitempty"`
}

func (e *AuthError) Error() string {
	return "wyze: " + e.Message
}

func (c *Cloud) IsLoggedIn() bool {
	return c.accessToken != ""
}

// Logout - forget access token, next request needs new Login
func (c *Cloud) Logout() {
	c.accessToken = ""
}

func (c *Cloud) Login(email, password string) error {
	payload := map[string]string{
		"email":    strings.TrimSpace(email),
		"password": hashPassword(password),
	}

	req, err := newRequest(baseURLAuth+"/api/user/login", payload)
	if err != nil {
		return err
	}

	req.Header.Set("Apikey", c.apiKey)
	req.Header.Set("Keyid", c.keyID)
	req.Header.Set("User-Agent", "wyzebridge")

	body, err := c.do(req)
	if err != nil {
		return err
	}

	var errResp apiError
	_ = json.Unmarshal(body, &errResp)
	if errResp.hasError() {
		return &errResp
	}

	var res loginResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("wyze: failed to parse login response: %w", err)
	}

	if len(res.MFAOptions) > 0 {
		return &AuthError{
			Message:  "MFA required",
			NeedsMFA: true,
			MFAType:  strings.Join(res.MFAOptions, ","),
		}
	}

	if res.AccessToken == "" {
		return errors.New("wyze: no access token in response")
	}

	c.accessToken = res.AccessToken

	return nil
}

type deviceListResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		DeviceList []struct {
			MAC          string `json:"mac"`
			Nickname     string `json:"nickname"`
			ProductModel string `json:"product_model"`
			ProductType  string `json:"product_type"`
			ConnState    int    `json:"conn_state"`
			DeviceParams struct {
				IP string `json:"ip"`
			} `json:"device_params"`
		} `json:"device_list"`
	} `json:"data"`
}

func (c *Cloud) GetCameraList() ([]*Camera, error) {
	if !c.IsLoggedIn() {
		return nil, errors.New("wyze: not logged in")
	}

	payload := map[string]any{
		"access_token":      c.accessToken,
		"phone_id":          c.phoneID,
		"app_name":          appName,
		"app_ver":           appName + "___" + appVersion,
		"app_version":       appVersion,
		"phone_system_type": 1,
		"sc":                "9f275790cab94a72bd206c8876429f3c",
		"sv":                "9d74946e652647e9b6c9d59326aef104",
		"ts":                time.Now().UnixMilli(),
	}

	req, err := newRequest(baseURLAPI+"/app/v2/home_page/get_object_list", payload)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var res deviceListResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("wyze: failed to parse device list: %w", err)
	}

	if res.Code != "1" {
		return nil, fmt.Errorf("wyze: API error: %s - %s", res.Code, res.Msg)
	}

	var items []*Camera
	for _, dev := range res.Data.DeviceList {
		if dev.ProductType != "Camera" {
			continue
		}

		items = append(items, &Camera{
			MAC:          dev.MAC,
			IP:           dev.DeviceParams.IP,
			Nickname:     dev.Nickname,
			ProductModel: dev.ProductModel,
			IsOnline:     dev.ConnState == 1,
		})
	}

	return items, nil
}

func newRequest(url string, payload any) (*http.Request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, strings.NewReader(string(b)))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Cloud) do(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 500 {
		return nil, fmt.Errorf("wyze: %s %s", req.URL.Path, res.Status)
	}

	return io.ReadAll(res.Body)
}

func hashPassword(password string) string {
	encoded := strings.TrimSpace(password)
	if strings.HasPrefix(strings.ToLower(encoded), "md5:") {
		return encoded[4:]
	}
	for i := 0; i < 3; i++ {
		hash := md5.Sum([]byte(encoded))
		encoded = hex.EncodeToString(hash[:])
	}
	return encoded
}
