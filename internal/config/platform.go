package config

// Backend hosts as seen from each platform. The Android emulator reaches the
// host machine through 10.0.2.2.
const (
	iosBaseURL     = "http://localhost:3000"
	androidBaseURL = "http://10.0.2.2:3000"
	defaultBaseURL = "http://localhost:3000"
)

// BaseURLFor picks the backend base URL for a platform name as reported by
// runtime.GOOS. There is no override.
func BaseURLFor(platform string) string {
	switch platform {
	case "ios":
		return iosBaseURL
	case "android":
		return androidBaseURL
	default:
		return defaultBaseURL
	}
}
