package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial config and returns the remaining
// positional arguments (the client command line).
//
// Flags:
//
//	-a                server listen address host:port
//	-s                server URL or host:port used by the client
//	-d                Postgres DSN
//	-l                local SQLite file
//	-c, -config       JSON config file
//	-token-sign-key   token signing key
//	-token-issuer     token issuer
//	-token-duration   token lifetime (e.g. 24h)
//	-request-timeout  request timeout for server and client
//	-hash-key         request integrity key
//	-redis            Redis address for the message cache
//	-debounce         field upsert debounce interval
//	-ai-base-url      completion API base URL
//	-ai-model         completion model
//	-no-auto-create   do not create chat sessions implicitly
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var (
		adapterAddress string
		databaseDSN    string
		localPath      string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		hashKey        string
		redisAddr      string
		debounce       time.Duration
		aiBaseURL      string
		aiModel        string
		noAutoCreate   bool
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Server URL or host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&localPath, "l", "", "Local database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&redisAddr, "redis", "", "Redis address host:port")
	fs.DurationVar(&debounce, "debounce", 0, "Field sync debounce interval")
	fs.StringVar(&aiBaseURL, "ai-base-url", "", "Completion API base URL")
	fs.StringVar(&aiModel, "ai-model", "", "Completion model")
	fs.BoolVar(&noAutoCreate, "no-auto-create", false, "Do not create chat sessions implicitly")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{Path: localPath},
			Cache: Cache{RedisAddr: redisAddr},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{DebounceInterval: debounce},
		AI: AI{
			BaseURL: aiBaseURL,
			Model:   aiModel,
		},
		Chat:         Chat{DisableAutoCreate: noAutoCreate},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set accepts host:port where host is "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
