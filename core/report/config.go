package report

// Config holds defaults for the written report.
type Config struct {
	// Format is the report format used when no --format flag is given (text, json).
	Format string `mapstructure:"format" default:"text"`
	// UploadPrefix is the object prefix reports are uploaded under.
	UploadPrefix string `mapstructure:"upload_prefix" default:"reports"`
}
