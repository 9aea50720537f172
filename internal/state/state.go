// Package state wires the config, remote store, and auth provider into the
// single session-state struct the commands share.
package state

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jotlabs/jot/internal/auth"
	"github.com/jotlabs/jot/internal/config"
	"github.com/jotlabs/jot/internal/constants"
	"github.com/jotlabs/jot/internal/logger"
	"github.com/jotlabs/jot/internal/remote"
)

type State struct {
	Config *config.Config
	Store  remote.Store
	Auth   auth.Provider
	Home   string
	Log    *zap.SugaredLogger
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	logger.Init(config.GetLogPath(home))

	return &State{
		Config: cfg,
		Store:  remote.NewClient(cfg.ServerURL, cfg.Token, logger.Sugar),
		Auth:   auth.NewHTTPProvider(cfg, logger.Sugar),
		Home:   home,
		Log:    logger.Sugar,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}
