// Package di provides dependency injection container
package di

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ssargent/roundtrip/pkg/codec"
	"github.com/ssargent/roundtrip/pkg/config"
	"github.com/ssargent/roundtrip/pkg/demo"
	"github.com/ssargent/roundtrip/pkg/logging"
)

// Container holds all the dependencies for the application
type Container struct {
	config *config.Config
	logger *zap.Logger
	codec  *codec.FileCodec
}

// NewContainer creates a container wired with the default configuration
func NewContainer() *Container {
	cfg := config.DefaultConfig()
	return &Container{
		config: cfg,
		logger: logging.Nop(),
		codec:  codec.NewFileCodec(codec.FileCodecConfig{Indent: cfg.Indent}),
	}
}

// Configure rebuilds the logger and codec from cfg. Logs are written to logOut.
func (c *Container) Configure(cfg *config.Config, logOut io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	perm, err := cfg.FilePerm()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, logOut)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	c.config = cfg
	c.logger = logger
	c.codec = codec.NewFileCodec(codec.FileCodecConfig{
		Indent:   cfg.Indent,
		FileMode: perm,
	})
	return nil
}

// GetConfig returns the active configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger returns the application logger
func (c *Container) GetLogger() *zap.Logger {
	return c.logger
}

// GetCodec returns the file codec
func (c *Container) GetCodec() *codec.FileCodec {
	return c.codec
}

// SetLogger allows overriding the logger (for testing)
func (c *Container) SetLogger(logger *zap.Logger) {
	c.logger = logger
}

// NewRunner creates a demonstration runner writing its progress to out
func (c *Container) NewRunner(out io.Writer) *demo.Runner {
	return demo.NewRunner(demo.RunnerConfig{
		Codec:     c.codec,
		Logger:    c.logger,
		Out:       out,
		OutputDir: c.config.OutputDir,
		NoColor:   !c.config.Color,
	})
}
