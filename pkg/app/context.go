package app

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Context holds application-wide configuration and state
type Context struct {
	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Destinations for results and diagnostics
	Out    io.Writer
	ErrOut io.Writer
}

// NewContext creates a new application context
func NewContext() *Context {
	return &Context{
		OutputFormat: "table",
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
	}
}

// Log outputs a message based on verbosity settings
func (c *Context) Log(message string) {
	if !c.Quiet && c.Verbose {
		fmt.Fprintln(c.ErrOut, message)
	}
}

// Error outputs an error message unless quiet
func (c *Context) Error(message string) {
	if !c.Quiet {
		fmt.Fprintln(c.ErrOut, "Error:", message)
	}
}

// Logger returns a logger for warnings raised while parsing. Quiet contexts
// discard them.
func (c *Context) Logger() *log.Logger {
	if c.Quiet || c.ErrOut == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.ErrOut, "", log.LstdFlags)
}
