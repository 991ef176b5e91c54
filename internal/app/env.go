package app

import (
	"bufio"
	"errors"
	"os"
	"strings"
)

// ApplyEnv fills fields of cfg still at their zero value from the process
// environment. Call it after LoadEnvFiles so that dotenv values reach
// flags the user left unset; an explicit flag always wins.
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.URL == "" {
		cfg.URL = os.Getenv("OJEXTRACT_URL")
	}
}

// LoadEnvFiles loads dotenv files of KEY=VALUE pairs into the process
// environment, later files overriding earlier ones. Missing files are
// skipped; '#' lines and blanks are ignored; values are not expanded.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if err := loadEnvFile(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			// ignore malformed lines silently
			continue
		}
		val = strings.TrimSpace(val)
		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}
		_ = os.Setenv(key, val)
	}
	return scanner.Err()
}
