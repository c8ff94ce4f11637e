package sdk

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/gosdk/base/validator"
	"github.com/x-xyz/gosdk/domain/market"
	"github.com/x-xyz/gosdk/stores/web_resource/repository"
)

const (
	StorageWriterIpfs   = "ipfs"
	StorageWriterPinata = "pinata"
	StorageWriterGcs    = "gcs"
)

type Config struct {
	RpcUrl            string `validate:"required"`
	RpcMaxConcurrency int    `validate:"gte=0"`

	// PrivateKey is optional, the sdk is read-only without it
	PrivateKey      string
	MaxGasPriceGwei float64 `validate:"gte=0"`
	TxTimeout       time.Duration
	PollInterval    time.Duration

	IpfsApi     string
	IpfsGateway string
	IpfsTimeout time.Duration
	HttpTimeout time.Duration

	PinataApiKey    string
	PinataApiSecret string

	StorageWriter string `validate:"omitempty,oneof=ipfs pinata gcs"`

	CloudStorageBucket      string
	CloudStorageUrl         string
	CloudStorageCredentials string
	CloudStorageTimeout     time.Duration

	FilterPriority market.FilterPriority `validate:"omitempty,oneof=asset seller"`

	MetricsEnabled bool
	DatadogHost    string

	Debug bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("rpc.maxConcurrency", 0)
	v.SetDefault("tx.timeout", 5*time.Minute)
	v.SetDefault("tx.pollInterval", 5*time.Second)
	v.SetDefault("ipfs.gateway", repository.DefaultIpfsGateway)
	v.SetDefault("ipfs.timeout", 30*time.Second)
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("cloud-storage.timeout", 30*time.Second)
	v.SetDefault("market.filterPriority", string(market.AssetFirst))
}

// LoadConfig reads a yaml config file, env vars override file values (RPC_URL overrides rpc.url)
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return ConfigFromViper(v)
}

func ConfigFromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		RpcUrl:                  v.GetString("rpc.url"),
		RpcMaxConcurrency:       v.GetInt("rpc.maxConcurrency"),
		PrivateKey:              v.GetString("signer.privateKey"),
		MaxGasPriceGwei:         v.GetFloat64("gas.maxPriceGwei"),
		TxTimeout:               v.GetDuration("tx.timeout"),
		PollInterval:            v.GetDuration("tx.pollInterval"),
		IpfsApi:                 v.GetString("ipfs.api"),
		IpfsGateway:             v.GetString("ipfs.gateway"),
		IpfsTimeout:             v.GetDuration("ipfs.timeout"),
		HttpTimeout:             v.GetDuration("http.timeout"),
		PinataApiKey:            v.GetString("pinata.apiKey"),
		PinataApiSecret:         v.GetString("pinata.apiSecret"),
		StorageWriter:           v.GetString("storage.writer"),
		CloudStorageBucket:      v.GetString("cloud-storage.bucket"),
		CloudStorageUrl:         v.GetString("cloud-storage.url"),
		CloudStorageCredentials: v.GetString("cloud-storage.credentials"),
		CloudStorageTimeout:     v.GetDuration("cloud-storage.timeout"),
		FilterPriority:          market.FilterPriority(v.GetString("market.filterPriority")),
		MetricsEnabled:          v.GetBool("metrics.enabled"),
		DatadogHost:             v.GetString("datadog_host"),
		Debug:                   v.GetBool("debug"),
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
