package app

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	"tgol/pkg/sims/life"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.Density != life.DefaultDensity || c.Rule != "conway" || c.SpeedMS != 50 || c.UI != UITerminal {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if c.Speed() != 50*time.Millisecond {
		t.Fatalf("Speed() = %v", c.Speed())
	}
}

func TestLoadEnvOverridesOnlySetVariables(t *testing.T) {
	t.Setenv("GOL_DENSITY", "35")
	t.Setenv("GOL_RULE", "highlife")
	t.Setenv("GOL_ADAPTIVE", "true")

	c := NewConfig()
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.Density != 35 || c.Rule != "highlife" || !c.Adaptive {
		t.Fatalf("env not applied: %+v", c)
	}
	if c.SpeedMS != 50 || c.MinRows != 10 {
		t.Fatalf("unset variables changed defaults: %+v", c)
	}
}

func TestLoadEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("GOL_SPEED_MS", "fast")
	if err := NewConfig().LoadEnv(); err == nil {
		t.Fatal("expected error for non-numeric GOL_SPEED_MS")
	}
}

func TestValidateRejectsEnvDensityBeforeStartup(t *testing.T) {
	t.Setenv("GOL_DENSITY", "5000")
	c := NewConfig()
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if err := c.Validate(); !errors.Is(err, life.ErrInvalidArgument) {
		t.Fatalf("Validate err = %v, want ErrInvalidArgument", err)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("GOL_DENSITY", "35")
	c := NewConfig()
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-density", "120", "-rule", "B36/S23", "-speed", "20"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Density != 120 || c.Rule != "B36/S23" || c.SpeedMS != 20 {
		t.Fatalf("flags not applied: %+v", c)
	}
}

func TestApplyArgs(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		want    int
		warning string
	}{
		{"none", nil, 77, ""},
		{"valid", []string{"250"}, 250, ""},
		{"boundary", []string{"1000"}, 1000, ""},
		{"garbage", []string{"12x"}, life.DefaultDensity, "Invalid density argument '12x'"},
		{"too large", []string{"1001"}, life.DefaultDensity, "between 0 and 1000"},
		{"negative", []string{"-4"}, life.DefaultDensity, "between 0 and 1000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewConfig()
			c.Density = 77
			var warn bytes.Buffer
			c.ApplyArgs(tc.args, &warn)
			if c.Density != tc.want {
				t.Fatalf("density = %d, want %d", c.Density, tc.want)
			}
			if tc.warning == "" && warn.Len() != 0 {
				t.Fatalf("unexpected warning %q", warn.String())
			}
			if !strings.Contains(warn.String(), tc.warning) {
				t.Fatalf("warning %q does not mention %q", warn.String(), tc.warning)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
	}{
		{"density too large", func(c *Config) { c.Density = 5000 }},
		{"negative density", func(c *Config) { c.Density = -1 }},
		{"speed", func(c *Config) { c.SpeedMS = 0 }},
		{"min rows", func(c *Config) { c.MinRows = 0 }},
		{"scale", func(c *Config) { c.Scale = 0 }},
		{"ui", func(c *Config) { c.UI = "web" }},
		{"rule", func(c *Config) { c.Rule = "B9/S" }},
	}
	for _, tc := range cases {
		c := NewConfig()
		tc.mod(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestWorldConfig(t *testing.T) {
	c := NewConfig()
	c.Rule = "growth"
	c.Density = 9
	c.Adaptive = true
	wc, err := c.WorldConfig(12, 40)
	if err != nil {
		t.Fatalf("WorldConfig: %v", err)
	}
	if wc.Rows != 12 || wc.Cols != 40 || wc.Density != 9 || !wc.Adaptive || wc.Rule.String() != "B36/S236" {
		t.Fatalf("unexpected world config: %+v", wc)
	}
}
