package app_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/matprops/internal/app"
	"github.com/vk/matprops/internal/hcl"
	"github.com/vk/matprops/internal/testutil"
)

const appTestDocument = `
material "AS3678-2016-250" {
  type     = "steel"
  name     = "250"
  standard = "AS3678-2016"

  properties {
    E = 200e9
  }

  strengths {
    thicknesses = [0.008, 0.012, 0.020, 0.050, 0.080, 0.150, 0.200]
    yield       = [280e6, 260e6, 250e6, 250e6, 240e6, 230e6, 220e6]
    ultimate    = [410e6, 410e6, 410e6, 410e6, 410e6, 410e6, 410e6]
  }
}

material "AS3678-2016-300" {
  type     = "steel"
  name     = "300"
  standard = "AS3678-2016"

  properties {
    E = 200e9
  }
}
`

func newTestApp(t *testing.T, cfg app.Config) (*app.App, *bytes.Buffer) {
	t.Helper()

	cfg.MaterialsPath = testutil.WriteDocument(t, appTestDocument)
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logBuf := &bytes.Buffer{}
	a, err := app.New(out, logBuf, appConfig, hcl.NewLoader())
	require.NoError(t, err)
	return a, out
}

func TestApp_List(t *testing.T) {
	a, out := newTestApp(t, app.Config{Command: app.CommandList})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "AS3678-2016-250\nAS3678-2016-300\n", out.String())
}

func TestApp_Show(t *testing.T) {
	a, out := newTestApp(t, app.Config{Command: app.CommandShow, Key: "AS3678-2016-250"})

	require.NoError(t, a.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "key:      AS3678-2016-250")
	assert.Contains(t, got, "standard: AS3678-2016")
	assert.Contains(t, got, "scalar    E = 2e+11")
	assert.Contains(t, got, "banded    yield_strength")
	assert.Contains(t, got, "banded    tensile_strength")
}

func TestApp_Resolve(t *testing.T) {
	thickness := 0.02
	a, out := newTestApp(t, app.Config{
		Command:   app.CommandResolve,
		Key:       "AS3678-2016-250",
		Property:  "yield_strength",
		Thickness: &thickness,
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "2.5e+08\n", out.String())
}

func TestApp_ResolveErrorsSurface(t *testing.T) {
	thickness := 0.02
	a, _ := newTestApp(t, app.Config{
		Command:   app.CommandResolve,
		Key:       "AS3678-2016-250",
		Property:  "E",
		Thickness: &thickness,
	})

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thickness must not be supplied")
}

func TestNew_BuildFailureIsAggregated(t *testing.T) {
	doc := `
material "dup" {
  type     = "steel"
  name     = "a"
  standard = "s"
}

material "dup" {
  type     = "steel"
  name     = "b"
  standard = "s"
}
`
	cfg, err := app.NewConfig(app.Config{
		MaterialsPath: testutil.WriteDocument(t, doc),
		Command:       app.CommandList,
	})
	require.NoError(t, err)

	_, err = app.New(&bytes.Buffer{}, &bytes.Buffer{}, cfg, hcl.NewLoader())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate material key "dup"`)
}
