package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Admin struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"admin,omitempty"`

	Storage struct {
		Backend string `json:"backend"`

		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Telegram struct {
		BotToken       string   `json:"bot_token"`
		ChatID         string   `json:"chat_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"telegram,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AdminUsername: jsonCfg.Admin.Username,
			AdminPassword: jsonCfg.Admin.Password,
		},
		Storage: Storage{
			Backend:       jsonCfg.Storage.Backend,
			MongoURI:      jsonCfg.Storage.Mongo.URI,
			MongoDatabase: jsonCfg.Storage.Mongo.Database,
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Telegram: Telegram{
			BotToken:       jsonCfg.Telegram.BotToken,
			ChatID:         jsonCfg.Telegram.ChatID,
			RequestTimeout: time.Duration(jsonCfg.Telegram.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
