package config

import (
	"flag"
	"os"
	"time"

	"github.com/freshdeal/account-service/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   HTTP bind address (e.g., ":8080")
//	-a string   account service gRPC address
//	-s string   service token HMAC secret
//	-n string   service name asserted in tokens
//	-m int      max retries per account call
//	-b int      retry backoff base, milliseconds
//	-c int      account call timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-a", "-s", "-n", "-m", "-b", "-c"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddress, "l", config.HTTPAddress, "address and port to serve HTTP")
	fs.StringVar(&config.AccountAddress, "a", config.AccountAddress, "account service address")
	fs.StringVar(&config.ServiceTokenSecret, "s", config.ServiceTokenSecret, "service token secret")
	fs.StringVar(&config.ServiceName, "n", config.ServiceName, "service name for minted tokens")
	fs.IntVar(&config.MaxRetries, "m", config.MaxRetries, "max retries per account call")

	backoffBase := fs.Int("b", int(config.BackoffBase.Milliseconds()), "retry backoff base (in milliseconds)")
	callTimeout := fs.Int("c", int(config.CallTimeout.Seconds()), "account call timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.BackoffBase = time.Duration(*backoffBase) * time.Millisecond
	config.CallTimeout = time.Duration(*callTimeout) * time.Second
}
