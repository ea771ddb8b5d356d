package config

const (
	defaultLogDir         = "~/.local/share/segue/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultAcceptMargin   = 0.05
	defaultFlacBonus      = 0.05
	defaultMaxInteractive = 10
	defaultOwner          = "jellyfin"
	defaultGroup          = "jellyfin"
)

// DefaultExtensions are the recognized audio file extensions, without dots.
var DefaultExtensions = []string{"flac", "m4a", "mp3", "ogg", "wav", "opus", "wma"}

// DefaultLiveIndicators are the filename substrings that flag a probable live
// recording.
var DefaultLiveIndicators = []string{"live", "concert", "tour", "festival", "unplugged", "acoustic"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Matching: Matching{
			AutoAccept:     true,
			AcceptMargin:   defaultAcceptMargin,
			Interactive:    true,
			MaxInteractive: defaultMaxInteractive,
			FlacBonus:      defaultFlacBonus,
			Extensions:     append([]string(nil), DefaultExtensions...),
			LiveIndicators: append([]string(nil), DefaultLiveIndicators...),
		},
		Output: Output{
			FixOwnership: true,
			Owner:        defaultOwner,
			Group:        defaultGroup,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
