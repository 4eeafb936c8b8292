package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ProjectIDEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultProjectID, cfg.Wallet.ProjectID)
	require.Equal(t, BaseChainID, cfg.DefaultChainID)
	require.Equal(t, "1", cfg.Mint.DefaultAmount)
	require.Equal(t, 3*time.Second, cfg.Mint.SuccessResetDelay)
	require.Equal(t, 5*time.Second, cfg.Mint.ErrorResetDelay)

	_, ok := cfg.Chain(EthereumChainID)
	require.True(t, ok)
	_, ok = cfg.Chain(10)
	require.False(t, ok)
}

func TestLoad_ProjectIDFromEnv(t *testing.T) {
	t.Setenv(ProjectIDEnv, "abc123")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "abc123", cfg.Wallet.ProjectID)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(ProjectIDEnv, "")

	path := filepath.Join(t.TempDir(), "mintboard.toml")
	content := `
log_level = "debug"
default_chain_id = 8453

[mint]
default_amount = "2"
success_reset_delay = "1s"

[[chains]]
id = 8453
name = "Base"
rpcs = ["https://base.example"]
contract_address = "0x00000000000000000000000000000000000000aa"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "2", cfg.Mint.DefaultAmount)
	require.Equal(t, time.Second, cfg.Mint.SuccessResetDelay)
	require.Equal(t, 5*time.Second, cfg.Mint.ErrorResetDelay)
	require.Len(t, cfg.Chains, 1)
	require.Equal(t, DefaultProjectID, cfg.Wallet.ProjectID)
}

func TestLoad_MissingDefaultChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mintboard.toml")
	content := `
default_chain_id = 10

[[chains]]
id = 1
name = "Ethereum"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_NonPositiveReceiptDurations(t *testing.T) {
	testCases := []struct {
		name string
		mint string
	}{
		{name: "zero poll interval", mint: `receipt_poll_interval = "0s"`},
		{name: "negative poll interval", mint: `receipt_poll_interval = "-1s"`},
		{name: "zero timeout", mint: `receipt_timeout = "0s"`},
		{name: "negative timeout", mint: `receipt_timeout = "-5m"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mintboard.toml")
			content := "[mint]\n" + tc.mint + "\n"
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestLoad_PageOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mintboard.toml")
	content := `
[page]
hero_text = "Mint ClawdCat on Base."

[[page.features]]
icon = "zap"
title = "Cheap"
description = "Low gas"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Mint ClawdCat on Base.", cfg.Page.HeroText)
	require.Equal(t, "Digital Assets", cfg.Page.HeroHighlight)
	require.Equal(t, []FeatureConfigs{{Icon: "zap", Title: "Cheap", Description: "Low gas"}}, cfg.Page.Features)
	require.Equal(t, "https://x.com/@clawdcatbot", cfg.Page.Socials[0].URL)
}
