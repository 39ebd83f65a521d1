package chain

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDifficulty is the number of leading zero hex characters required of
// a mined block's digest by default.
const DefaultDifficulty = 4

// Options represent the options for a Chain
type Options struct {
	Logger     logrus.FieldLogger
	Difficulty int
	Clock      func() time.Time
}

// DefaultOptions returns the default options for a Chain
func DefaultOptions() Options {
	return Options{
		Logger:     loggerWithFields(logrus.New()),
		Difficulty: DefaultDifficulty,
		Clock:      time.Now,
	}
}

// WithLogLevel updates the log level of the Chain's logger
func (opts Options) WithLogLevel(level logrus.Level) Options {
	logger := logrus.New()
	logger.SetLevel(level)
	opts.Logger = loggerWithFields(logger)
	return opts
}

// WithLogOutput updates where the Chain's logger will log data to
func (opts Options) WithLogOutput(output io.Writer) Options {
	logger := logrus.New()
	logger.SetOutput(output)
	opts.Logger = loggerWithFields(logger)
	return opts
}

// WithDifficulty updates the number of leading zero hex characters the Chain
// requires of mined blocks
func (opts Options) WithDifficulty(difficulty int) Options {
	opts.Difficulty = difficulty
	return opts
}

// WithClock updates the clock the Chain timestamps new blocks with
func (opts Options) WithClock(clock func() time.Time) Options {
	opts.Clock = clock
	return opts
}

func loggerWithFields(logger *logrus.Logger) logrus.FieldLogger {
	return logger.
		WithField("lib", "minichain").
		WithField("pkg", "chain").
		WithField("com", "chain")
}
