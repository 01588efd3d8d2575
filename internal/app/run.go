package app

import (
	"context"
	"fmt"

	"github.com/vk/matprops/internal/ctxlog"
	"github.com/vk/matprops/internal/resolve"
)

// Run executes the configured command against the loaded registry.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandList:
		err = a.runList(ctx)
	case CommandShow:
		err = a.runShow(ctx)
	case CommandResolve:
		err = a.runResolve(ctx)
	default:
		// NewConfig rejects unknown commands, so this is unreachable in
		// practice but keeps the switch total.
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.")
	return err
}

// runList prints every material key in document order.
func (a *App) runList(ctx context.Context) error {
	for key := range a.registry.Keys() {
		fmt.Fprintln(a.outW, key)
	}
	return nil
}

// runShow prints a material's identity and the names of its properties.
func (a *App) runShow(ctx context.Context) error {
	m, err := a.registry.Get(a.config.Key)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "key:      %s\n", m.Key())
	fmt.Fprintf(a.outW, "type:     %s\n", m.Type())
	fmt.Fprintf(a.outW, "name:     %s\n", m.Name())
	fmt.Fprintf(a.outW, "standard: %s\n", m.Standard())

	for _, name := range m.ScalarNames() {
		v, _ := m.Scalar(name)
		fmt.Fprintf(a.outW, "scalar    %s = %g\n", name, v)
	}
	for _, name := range m.BandedNames() {
		fmt.Fprintf(a.outW, "banded    %s (thickness-dependent)\n", name)
	}
	return nil
}

// runResolve resolves one property value and prints it.
func (a *App) runResolve(ctx context.Context) error {
	value, err := resolve.Property(a.registry, a.config.Key, a.config.Property, a.config.Thickness)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "%g\n", value)
	return nil
}
