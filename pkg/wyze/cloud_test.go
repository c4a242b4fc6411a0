package wyze

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

const deviceList = `{
  "code": "1",
  "msg": "SUCCESS",
  "data": {
    "device_list": [
      {"mac": "2CAA8E000001", "nickname": "Front Door", "product_model": "HL_CAM4", "product_type": "Camera",
       "conn_state": 1, "device_params": {"ip": "192.168.1.20"}},
      {"mac": "2CAA8E000002", "nickname": "Garage #2", "product_model": "NEW_MODEL", "product_type": "Camera",
       "conn_state": 0, "device_params": {"ip": "192.168.1.21"}},
      {"mac": "2CAA8E000003", "nickname": "Hall Plug", "product_model": "WLPP1", "product_type": "Plug",
       "conn_state": 1, "device_params": {}}
    ]
  }
}`

func activateMock(t *testing.T) {
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func TestCleanName(t *testing.T) {
	require.Equal(t, "front_door", CleanName("Front Door"))
	require.Equal(t, "garage_2", CleanName("  Garage #2 "))
	require.Equal(t, "back-yard", CleanName("Back-Yard!"))
	require.Equal(t, "cm", CleanName("Cäm"))
}

func TestHashPassword(t *testing.T) {
	require.Equal(t, "abcdef", hashPassword("md5:abcdef"))
	require.Len(t, hashPassword("secret"), 32)
	require.NotEqual(t, hashPassword("secret"), hashPassword("secret2"))
}

func TestLoginAndList(t *testing.T) {
	activateMock(t)

	httpmock.RegisterResponder("POST", baseURLAuth+"/api/user/login",
		func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "key", req.Header.Get("Apikey"))
			require.Equal(t, "id", req.Header.Get("Keyid"))
			return httpmock.NewStringResponse(http.StatusOK, `{"access_token":"token","user_id":"u1"}`), nil
		})
	httpmock.RegisterResponder("POST", baseURLAPI+"/app/v2/home_page/get_object_list",
		httpmock.NewStringResponder(http.StatusOK, deviceList))

	cloud := NewCloud("key", "id")

	_, err := cloud.GetAllCamInfo()
	require.NotNil(t, err)

	require.Nil(t, cloud.Login("user@example.com", "password"))
	require.True(t, cloud.IsLoggedIn())

	items, err := cloud.GetAllCamInfo()
	require.Nil(t, err)
	require.Len(t, items, 2)

	require.Equal(t, "front_door", items[0].URI)
	require.Equal(t, "Front Door", items[0].Nickname)
	require.Equal(t, "Wyze Cam v4", items[0].Model)
	require.Equal(t, "2CAA8E000001", items[0].MAC)
	require.Equal(t, "192.168.1.20", items[0].IP)
	require.True(t, items[0].Enabled)

	require.Equal(t, "garage_2", items[1].URI)
	require.Equal(t, "NEW_MODEL", items[1].Model)
	require.False(t, items[1].Enabled)

	cloud.Logout()
	require.False(t, cloud.IsLoggedIn())

	_, err = cloud.GetAllCamInfo()
	require.EqualError(t, err, "wyze: not logged in")
}

func TestLoginErrors(t *testing.T) {
	activateMock(t)

	httpmock.RegisterResponder("POST", baseURLAuth+"/api/user/login",
		httpmock.NewStringResponder(http.StatusOK, `{"errorCode":1000,"description":"Invalid credentials"}`))

	cloud := NewCloud("key", "id")
	err := cloud.Login("user@example.com", "wrong")
	require.EqualError(t, err, "wyze: login failed (code 1000): Invalid credentials")
	require.False(t, cloud.IsLoggedIn())

	httpmock.RegisterResponder("POST", baseURLAuth+"/api/user/login",
		httpmock.NewStringResponder(http.StatusOK, `{"mfa_options":["PrimaryPhone","TotpVerificationCode"]}`))

	err = cloud.Login("user@example.com", "password")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.True(t, authErr.NeedsMFA)
	require.Equal(t, "PrimaryPhone,TotpVerificationCode", authErr.MFAType)
}

func TestListError(t *testing.T) {
	activateMock(t)

	httpmock.RegisterResponder("POST", baseURLAuth+"/api/user/login",
		httpmock.NewStringResponder(http.StatusOK, `{"access_token":"token"}`))
	httpmock.RegisterResponder("POST", baseURLAPI+"/app/v2/home_page/get_object_list",
		httpmock.NewStringResponder(http.StatusOK, `{"code":"2001","msg":"AccessTokenError"}`))

	cloud := NewCloud("key", "id")
	require.Nil(t, cloud.Login("user@example.com", "password"))

	_, err := cloud.GetAllCamInfo()
	require.EqualError(t, err, "wyze: API error: 2001 - AccessTokenError")
}
