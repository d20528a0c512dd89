// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/models"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments against an open CLI
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// Func adapts a plain function to the Handler interface
type Func func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute calls f
func (f Func) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Presenter is implemented by results that render their own human output
type Presenter interface {
	Present(f *cli.OutputFormatter) error
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(h Handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		formatter := cli.FormatterFor(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
			return cli.Reported(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		// Execute handler
		result, err := h.Execute(ctx, cliInstance, arguments)
		if err != nil {
			return formatter.Fail(err)
		}

		// Common output formatting
		switch r := result.(type) {
		case *models.ResultSet:
			return formatter.ResultSet(r)
		case Presenter:
			if formatter.JSON || formatter.Quiet {
				return formatter.Success(r)
			}
			return r.Present(formatter)
		default:
			return formatter.Success(result)
		}
	}
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		// Get the value based on flag type
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringArray":
			if v, err := cmd.Flags().GetStringArray(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	// Defaults of unset flags are still visible through the getters
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if _, ok := flags[f.Name]; ok {
			return
		}
		switch f.Value.Type() {
		case "string":
			if f.DefValue != "" {
				flags[f.Name] = f.DefValue
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		}
	})

	return flags
}

// RequireString retrieves a string flag or positional argument that must be non-empty
func (a *Arguments) RequireString(name string) (string, error) {
	val := strings.TrimSpace(a.GetString(name, ""))
	if val == "" {
		return "", fmt.Errorf("%w: --%s is required", cli.ErrUsage, name)
	}
	return val, nil
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// GetStringArray retrieves a repeatable string flag
func (a *Arguments) GetStringArray(name string) []string {
	v, ok := a.Flags[name]
	if !ok {
		return nil
	}
	val, ok := v.([]string)
	if !ok {
		return nil
	}
	return val
}

// ArgOrFlag returns positional argument i when present, otherwise the named flag
func (a *Arguments) ArgOrFlag(i int, name string) string {
	if i < len(a.Args) && strings.TrimSpace(a.Args[i]) != "" {
		return a.Args[i]
	}
	return a.GetString(name, "")
}
