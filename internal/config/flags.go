package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (sqlite, postgres)
//	-c/-config json file path with configs
//	-bus device bus daemon URL
//	-server-url service API URL used by the client
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level
//	-strategy decision strategy name
//	-rules decision rules YAML path
//	-offline-timeout presence offline timeout
//	-session-timeout pairing session timeout
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var busAddress, serverURL string
	var requestTimeout time.Duration
	var logLevel string
	var strategy, rulesPath string
	var offlineTimeout, sessionTimeout time.Duration

	fs := flag.NewFlagSet(progName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (sqlite, postgres)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&busAddress, "bus", "", "Device bus daemon URL")
	fs.StringVar(&serverURL, "server-url", "", "Service API URL used by the client")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&strategy, "strategy", "", "Decision strategy name")
	fs.StringVar(&rulesPath, "rules", "", "Decision rules YAML path")
	fs.DurationVar(&offlineTimeout, "offline-timeout", 0, "Offline time before peer groups are deleted")
	fs.DurationVar(&sessionTimeout, "session-timeout", 0, "Pairing session timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BusAddress:     busAddress,
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Presence: Presence{
			OfflineTimeout: offlineTimeout,
		},
		TrustGroup: TrustGroup{
			SessionTimeout: sessionTimeout,
		},
		Decision: Decision{
			Strategy:  strategy,
			RulesPath: rulesPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func progName() string {
	if len(os.Args) == 0 {
		return "device-keeper"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
