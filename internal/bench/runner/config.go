package runner

type Config struct {
	// ResetArchives removes archives left by an earlier run before the first case.
	ResetArchives bool
	// Publish moves the archives into the results dir once every case is done.
	Publish bool
	// SkipRuntimes writes no runtime rows, as when replaying saved output.
	SkipRuntimes bool
	// SinkBatchSize is the number of score records mirrored per sink call.
	SinkBatchSize int
}

const DefaultSinkBatchSize = 64

func DefaultConfig() Config {
	return Config{
		ResetArchives: true,
		Publish:       true,
		SinkBatchSize: DefaultSinkBatchSize,
	}
}
