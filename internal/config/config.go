package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

type Server struct {
	Port            int
	ShutdownTimeout int // seconds granted to in-flight requests on shutdown
}

type Database struct {
	Path string
}

type Redis struct {
	Addr string // empty disables the menu cache
}

type Rabbit struct {
	Host     string // empty disables the event relay
	Port     int
	User     string
	Password string
	VHost    string
}

type App struct {
	Server   Server
	Database Database
	Redis    Redis
	Rabbit   Rabbit
}

// Load reads the two-level YAML config format used across the project:
// top-level sections followed by key: value pairs. No external parser needed.
func Load(path string) (App, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return App{}, err
	}

	a := App{
		Server:   Server{Port: 5000, ShutdownTimeout: 5},
		Database: Database{Path: "pos.db"},
		Rabbit:   Rabbit{Port: 5672, VHost: "/"},
	}

	var section string
	for _, ln := range strings.Split(string(b), "\n") {
		line := strings.TrimSpace(ln)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			section = strings.TrimSuffix(line, ":")
			continue
		}
		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.Trim(strings.TrimSpace(kv[1]), `"'`)

		switch section {
		case "server":
			switch key {
			case "port":
				a.Server.Port = atoi(val, a.Server.Port)
			case "shutdown_timeout":
				a.Server.ShutdownTimeout = atoi(val, a.Server.ShutdownTimeout)
			}
		case "database":
			if key == "path" && val != "" {
				a.Database.Path = val
			}
		case "redis":
			if key == "addr" {
				a.Redis.Addr = val
			}
		case "rabbitmq":
			switch key {
			case "host":
				a.Rabbit.Host = val
			case "port":
				a.Rabbit.Port = atoi(val, a.Rabbit.Port)
			case "user":
				a.Rabbit.User = val
			case "password":
				a.Rabbit.Password = val
			case "vhost":
				if val != "" {
					a.Rabbit.VHost = val
				}
			}
		}
	}

	if a.Server.Port <= 0 || a.Server.Port > 65535 {
		return App{}, errors.New("invalid config: server port out of range")
	}
	if a.Server.ShutdownTimeout <= 0 {
		return App{}, errors.New("invalid config: shutdown_timeout must be positive")
	}
	if a.Rabbit.Host != "" && a.Rabbit.User == "" {
		return App{}, errors.New("invalid config: rabbitmq host set but user missing")
	}
	return a, nil
}

// FindConfig returns the first config file present among the usual locations.
func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "deploy/config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
