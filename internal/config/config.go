package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	model "auction-market/internal/models"
	"auction-market/internal/repository"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultDeployer is the genesis deployer used when none is configured
const DefaultDeployer model.Address = "0x00000000000000000000000000000000000000de"

// Config is the runtime configuration of the marketplace server
type Config struct {
	Port        string
	LogLevel    string
	GinMode     string
	GenesisFile string
	Genesis     Genesis
}

// Account is a pre-funded native-currency account
type Account struct {
	Address       model.Address `yaml:"address"`
	NativeBalance uint64        `yaml:"native_balance"`
}

// TokenGenesis configures the fungible bidding currency
type TokenGenesis struct {
	model.TokenMetadata `yaml:",inline"`
	TotalSupply         uint64        `yaml:"total_supply"`
	Owner               model.Address `yaml:"owner"`
}

// CertificateGenesis configures the certificate collection
type CertificateGenesis struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// CrowdsaleGenesis configures the token sale
type CrowdsaleGenesis struct {
	Rate    uint64        `yaml:"rate"`
	Wallet  model.Address `yaml:"wallet"`
	Funding uint64        `yaml:"funding"`
}

// Genesis is the initial state the contracts are deployed with
type Genesis struct {
	Deployer       model.Address      `yaml:"deployer"`
	FirstUserID    int64              `yaml:"first_user_id"`
	FirstAuctionID int64              `yaml:"first_auction_id"`
	Token          TokenGenesis       `yaml:"token"`
	Certificate    CertificateGenesis `yaml:"certificate"`
	Crowdsale      CrowdsaleGenesis   `yaml:"crowdsale"`
	Accounts       []Account          `yaml:"accounts"`
}

// DefaultGenesis mirrors the reference deployment: the deployer owns the whole
// token supply and funds the crowdsale with a thousandth of it.
func DefaultGenesis() Genesis {
	const supply = 1_000_000_000
	return Genesis{
		Deployer:       DefaultDeployer,
		FirstUserID:    repository.DefaultSequenceBase,
		FirstAuctionID: repository.DefaultSequenceBase,
		Token: TokenGenesis{
			TokenMetadata: model.TokenMetadata{Name: "MRA Token", Symbol: "MRA", Decimals: 18},
			TotalSupply:   supply,
			Owner:         DefaultDeployer,
		},
		Certificate: CertificateGenesis{Name: "Marriage Certification Token", Symbol: "MCT"},
		Crowdsale: CrowdsaleGenesis{
			Rate:    1,
			Wallet:  DefaultDeployer,
			Funding: supply / 1000,
		},
	}
}

// Validate checks addresses and amounts, normalizing addresses in place
func (g *Genesis) Validate() error {
	var err error
	if g.Deployer, err = model.ParseAddress(string(g.Deployer)); err != nil {
		return fmt.Errorf("genesis deployer: %w", err)
	}
	if g.Token.Owner == "" {
		g.Token.Owner = g.Deployer
	}
	if g.Token.Owner, err = model.ParseAddress(string(g.Token.Owner)); err != nil {
		return fmt.Errorf("genesis token owner: %w", err)
	}
	if g.Crowdsale.Wallet == "" {
		g.Crowdsale.Wallet = g.Deployer
	}
	if g.Crowdsale.Wallet, err = model.ParseAddress(string(g.Crowdsale.Wallet)); err != nil {
		return fmt.Errorf("genesis crowdsale wallet: %w", err)
	}
	for i := range g.Accounts {
		if g.Accounts[i].Address, err = model.ParseAddress(string(g.Accounts[i].Address)); err != nil {
			return fmt.Errorf("genesis account %d: %w", i, err)
		}
	}

	if g.FirstUserID < 1 || g.FirstAuctionID < 1 {
		return errors.New("genesis: first ids must be positive")
	}
	if g.Token.Symbol == "" || g.Certificate.Symbol == "" {
		return errors.New("genesis: token symbols are required")
	}
	if g.Crowdsale.Rate == 0 {
		return errors.New("genesis: crowdsale rate must be positive")
	}
	if g.Crowdsale.Funding > g.Token.TotalSupply {
		return errors.New("genesis: crowdsale funding exceeds total supply")
	}
	return nil
}

// LoadGenesis reads a YAML genesis file on top of the defaults
func LoadGenesis(path string) (Genesis, error) {
	g := DefaultGenesis()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Genesis{}, fmt.Errorf("read genesis %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &g); err != nil {
			return Genesis{}, fmt.Errorf("parse genesis %s: %w", path, err)
		}
	}
	if err := g.Validate(); err != nil {
		return Genesis{}, err
	}
	return g, nil
}

// Load reads .env (if present), environment variables and the genesis file
func Load() (*Config, error) {
	// best-effort: a missing .env just means real env vars are used
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		GinMode:     getEnv("GIN_MODE", "release"),
		GenesisFile: os.Getenv("GENESIS_FILE"),
	}

	genesis, err := LoadGenesis(cfg.GenesisFile)
	if err != nil {
		return nil, err
	}
	if genesis.FirstUserID, err = getEnvInt("FIRST_USER_ID", genesis.FirstUserID); err != nil {
		return nil, err
	}
	if genesis.FirstAuctionID, err = getEnvInt("FIRST_AUCTION_ID", genesis.FirstAuctionID); err != nil {
		return nil, err
	}
	if err := genesis.Validate(); err != nil {
		return nil, err
	}
	cfg.Genesis = genesis

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s: %w", key, err)
	}
	return n, nil
}
