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
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-r string   Redis address
//	-o string   shared OTP secret
//	-s string   service token HMAC secret
//	-m int      max failed login attempts before lock
//	-t int      session TTL, minutes
//	-p int      OTP ticket TTL, minutes
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-o", "-s", "-m", "-t", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.OTPSecret, "o", config.OTPSecret, "shared OTP secret")
	fs.StringVar(&config.ServiceTokenSecret, "s", config.ServiceTokenSecret, "service token secret")
	fs.IntVar(&config.MaxLoginAttempts, "m", config.MaxLoginAttempts, "max failed login attempts before lock")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session_ttl (in minutes)")
	otpTTL := fs.Int("p", int(config.OTPTTL.Minutes()), "otp_ttl (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	config.OTPTTL = time.Duration(*otpTTL) * time.Minute
}
