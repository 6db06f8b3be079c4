package main

import (
	"strings"
	"sync"

	"filmbox/internal/client"
	"filmbox/internal/config"
	"filmbox/internal/snapshot"
)

type commandContext struct {
	serverFlag *string
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(serverFlag, configFlag *string) *commandContext {
	return &commandContext{
		serverFlag: serverFlag,
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.serverFlag != nil && strings.TrimSpace(*c.serverFlag) != "" {
			cfg.Client.ServerURL = strings.TrimRight(strings.TrimSpace(*c.serverFlag), "/")
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) newClient() (*client.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.Client)
}

func (c *commandContext) retryPolicy() client.RetryPolicy {
	cfg, err := c.ensureConfig()
	if err != nil {
		return client.RetryPolicy{Attempts: 1}
	}
	return client.PolicyFromConfig(cfg.Client)
}

// loadSnapshot opens the persisted snapshot of the last fetched list.
func (c *commandContext) loadSnapshot() (*snapshot.Snapshot, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	snap := snapshot.New(cfg.Paths.SnapshotPath)
	if err := snap.Load(); err != nil {
		return nil, err
	}
	return snap, nil
}
