package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slices"
)

const (
	ProjectIDEnv     = "WALLETCONNECT_PROJECT_ID"
	PrivateKeyEnv    = "MINTBOARD_PRIVATE_KEY"
	DefaultProjectID = "YOUR_PROJECT_ID"

	EthereumChainID int64 = 1
	BaseChainID     int64 = 8453

	ZeroAddress = "0x0000000000000000000000000000000000000000"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	ApiServer        ServerConfigs   `toml:"api_server"`
	PrometheusServer ServerConfigs   `toml:"prometheus_server"`
	Wallet           WalletConfigs   `toml:"wallet"`
	Chains           []ChainConfigs  `toml:"chains"`
	DefaultChainID   int64           `toml:"default_chain_id"`
	Mint             MintConfigs     `toml:"mint"`
	Database         DatabaseConfigs `toml:"database"`
	Redis            RedisConfigs    `toml:"redis"`
	Page             PageConfigs     `toml:"page"`
}

type ServerConfigs struct {
	Host           string   `toml:"host"`
	Port           string   `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type WalletConfigs struct {
	AppName   string `toml:"app_name"`
	ProjectID string `toml:"project_id"`

	// PrivateKey is a hex encoded secp256k1 key. When empty, the signing key is
	// derived from SecretKey and Nonce.
	PrivateKey string `toml:"private_key"`
	SecretKey  string `toml:"secret_key"`
	Nonce      string `toml:"nonce"`
}

type ChainConfigs struct {
	ID              int64    `toml:"id"`
	Name            string   `toml:"name"`
	Rpcs            []string `toml:"rpcs"`
	ExplorerURL     string   `toml:"explorer_url"`
	ContractAddress string   `toml:"contract_address"`
	UseEip1559      bool     `toml:"use_eip_1559"`

	// UseExternalRpcs adds the public rpcs listed on chainlist.org to Rpcs.
	UseExternalRpcs bool `toml:"use_external_rpcs"`
}

type MintConfigs struct {
	DefaultAmount           string        `toml:"default_amount"`
	SuccessResetDelay       time.Duration `toml:"success_reset_delay"`
	ErrorResetDelay         time.Duration `toml:"error_reset_delay"`
	InvalidAmountResetDelay time.Duration `toml:"invalid_amount_reset_delay"`
	ReceiptPollInterval     time.Duration `toml:"receipt_poll_interval"`
	ReceiptTimeout          time.Duration `toml:"receipt_timeout"`
	RefreshRpcFrequency     time.Duration `toml:"refresh_rpc_frequency"`
	GasLimit                uint64        `toml:"gas_limit"`
}

type DatabaseConfigs struct {
	Type     string `toml:"type"`
	Path     string `toml:"path"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

// PageConfigs is the static copy served with the dashboard config.
type PageConfigs struct {
	Badge         string           `toml:"badge"`
	HeroTitle     string           `toml:"hero_title"`
	HeroHighlight string           `toml:"hero_highlight"`
	HeroText      string           `toml:"hero_text"`
	MintTitle     string           `toml:"mint_title"`
	MintSubtitle  string           `toml:"mint_subtitle"`
	Features      []FeatureConfigs `toml:"features"`
	Socials       []SocialConfigs  `toml:"socials"`
}

type FeatureConfigs struct {
	Icon        string `toml:"icon"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

type SocialConfigs struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

func defaultPage() PageConfigs {
	return PageConfigs{
		Badge:         "Powered by Base",
		HeroTitle:     "The Future of",
		HeroHighlight: "Digital Assets",
		HeroText: "ClawdCat represents the next evolution in decentralized finance. " +
			"Mint, trade, and own a piece of the future.",
		MintTitle:    "Mint Your Tokens",
		MintSubtitle: "Connect your wallet and start minting ClawdCats today",
		Features: []FeatureConfigs{
			{
				Icon:        "rocket",
				Title:       "Lightning Fast",
				Description: "Experience instant transactions with next-gen blockchain technology",
			},
			{
				Icon:        "shield",
				Title:       "Secure & Audited",
				Description: "Smart contracts audited by leading security firms",
			},
			{
				Icon:        "zap",
				Title:       "Low Fees",
				Description: "Minimal transaction costs for maximum efficiency",
			},
		},
		Socials: []SocialConfigs{
			{Label: "@ClawdCatBot", URL: "https://x.com/@clawdcatbot"},
		},
	}
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		ApiServer: ServerConfigs{
			Host:           "",
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
		PrometheusServer: ServerConfigs{Port: "9090"},
		Wallet: WalletConfigs{
			AppName:   "BaseToken",
			ProjectID: DefaultProjectID,
		},
		Chains: []ChainConfigs{
			{
				ID:              BaseChainID,
				Name:            "Base",
				Rpcs:            []string{"https://mainnet.base.org"},
				ExplorerURL:     "https://basescan.org",
				ContractAddress: ZeroAddress,
				UseEip1559:      true,
			},
			{
				ID:              EthereumChainID,
				Name:            "Ethereum",
				Rpcs:            []string{"https://cloudflare-eth.com"},
				ExplorerURL:     "https://etherscan.io",
				ContractAddress: ZeroAddress,
				UseEip1559:      true,
			},
		},
		DefaultChainID: BaseChainID,
		Mint: MintConfigs{
			DefaultAmount:           "1",
			SuccessResetDelay:       3 * time.Second,
			ErrorResetDelay:         5 * time.Second,
			InvalidAmountResetDelay: 3 * time.Second,
			ReceiptPollInterval:     2 * time.Second,
			ReceiptTimeout:          5 * time.Minute,
			RefreshRpcFrequency:     time.Minute,
			GasLimit:                0,
		},
		Database: DatabaseConfigs{
			Type: "sqlite",
			Path: "mintboard.db",
		},
		Page: defaultPage(),
	}
}

// Load reads the TOML file at path over the defaults and then applies the
// environment overlay. An empty path skips the file.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path != "" {
		// Tables in the file replace the default lists instead of merging into them.
		cfg.Chains = nil
		cfg.Page.Features = nil
		cfg.Page.Socials = nil
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, fmt.Errorf("cannot decode config %s: %w", path, err)
		}

		defaults := Default()
		if len(cfg.Chains) == 0 {
			cfg.Chains = defaults.Chains
		}

		if len(cfg.Page.Features) == 0 {
			cfg.Page.Features = defaults.Page.Features
		}

		if len(cfg.Page.Socials) == 0 {
			cfg.Page.Socials = defaults.Page.Socials
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

func (c *Configs) applyEnv() {
	if projectID := os.Getenv(ProjectIDEnv); projectID != "" {
		c.Wallet.ProjectID = projectID
	}

	if c.Wallet.ProjectID == "" {
		c.Wallet.ProjectID = DefaultProjectID
	}

	if key := os.Getenv(PrivateKeyEnv); key != "" {
		c.Wallet.PrivateKey = key
	}
}

func (c Configs) Validate() error {
	if len(c.Chains) == 0 {
		return fmt.Errorf("no chain configured")
	}

	if _, ok := c.Chain(c.DefaultChainID); !ok {
		return fmt.Errorf("default chain %d is not configured", c.DefaultChainID)
	}

	if c.Mint.DefaultAmount == "" {
		return fmt.Errorf("mint default amount must not be empty")
	}

	if c.Mint.ReceiptPollInterval <= 0 {
		return fmt.Errorf("mint receipt poll interval must be positive, got %s", c.Mint.ReceiptPollInterval)
	}

	if c.Mint.ReceiptTimeout <= 0 {
		return fmt.Errorf("mint receipt timeout must be positive, got %s", c.Mint.ReceiptTimeout)
	}

	return nil
}

func (c Configs) Chain(id int64) (ChainConfigs, bool) {
	i := slices.IndexFunc(c.Chains, func(chain ChainConfigs) bool { return chain.ID == id })
	if i < 0 {
		return ChainConfigs{}, false
	}

	return c.Chains[i], true
}
