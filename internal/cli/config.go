package cli

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	Token        string
	DataDir      string
	UploadURL    string
	UploadPreset string
	Output       string
	Verbose      bool
}

// DefaultConfig returns a Config populated from the environment,
// reading a .env file first when one is present.
func DefaultConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerURL:    getEnvOrDefault("BGSHELF_SERVER", "http://localhost:5005"),
		Token:        os.Getenv("BGSHELF_TOKEN"),
		DataDir:      getEnvOrDefault("BGSHELF_DATA_DIR", defaultDataDir()),
		UploadURL:    getEnvOrDefault("BGSHELF_UPLOAD_URL", "https://api.cloudinary.com/v1_1/demo/image/upload"),
		UploadPreset: os.Getenv("BGSHELF_UPLOAD_PRESET"),
		Output:       "text",
		Verbose:      false,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bgshelf"
	}
	return filepath.Join(home, ".bgshelf")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
