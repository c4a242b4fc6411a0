package wyze

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/wyzebridge/rtspgen/internal/app"
	"github.com/wyzebridge/rtspgen/internal/bridge"
	"github.com/wyzebridge/rtspgen/pkg/discovery"
	"github.com/wyzebridge/rtspgen/pkg/wyze"
)

type AccountConfig struct {
	APIKey   string `yaml:"api_key"`
	APIID    string `yaml:"api_id"`
	Password string `yaml:"password"`
}

func Init() {
	var v struct {
		Cfg map[string]AccountConfig `yaml:"wyze"`
	}
	app.LoadConfig(&v)

	log = app.GetLogger("wyze")

	emails := make([]string, 0, len(v.Cfg))
	for email := range v.Cfg {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	for _, email := range emails {
		cfg := v.Cfg[email]
		if cfg.APIKey == "" || cfg.APIID == "" {
			log.Error().Str("email", email).Msg("[wyze] api_key and api_id required")
			continue
		}
		bridge.AddSource(newAccount(email, cfg))
	}
}

type account struct {
	email    string
	password string
	cloud    *wyze.Cloud
}

func newAccount(email string, cfg AccountConfig) *account {
	return &account{
		email:    email,
		password: cfg.Password,
		cloud:    wyze.NewCloud(cfg.APIKey, cfg.APIID),
	}
}

// GetAllCamInfo - login once, camera list is requested every time.
// Rejected session is dropped and login is repeated once.
func (a *account) GetAllCamInfo() ([]discovery.CamInfo, error) {
	reused := a.cloud.IsLoggedIn()
	if !reused {
		if err := a.login(); err != nil {
			return nil, err
		}
	}

	items, err := a.cloud.GetAllCamInfo()
	if err != nil && reused {
		log.Debug().Err(err).Str("email", a.email).Msg("[wyze] session rejected")
		a.cloud.Logout()
		if err = a.login(); err != nil {
			return nil, err
		}
		items, err = a.cloud.GetAllCamInfo()
	}
	if err != nil {
		a.cloud.Logout()
		return nil, err
	}

	log.Debug().Str("email", a.email).Int("cameras", len(items)).Msg("[wyze] device list")
	return items, nil
}

func (a *account) login() error {
	log.Debug().Str("email", a.email).Msg("[wyze] login")
	return a.cloud.Login(a.email, a.password)
}

var log zerolog.Logger
