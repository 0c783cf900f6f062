// Package config loads sheet, doping and relaxation settings from TOML.
//
// Keys absent from the document keep their defaults (see Default). Unknown
// keys are rejected so that typos do not silently fall back to defaults.
//
//	[sheet]
//	bond_distance = 1.42
//	width = 20.0
//	height = 20.0
//
//	[doping]
//	total_percentage = 15.0
//	seed = 42
//	graphitic_fill = true
//	[doping.percentages]
//	"Pyridinic-N 3" = 5.0
//
//	[relax]
//	enabled = true
//	inner_stiffness = 10.0
//	outer_stiffness = 0.1
//	max_iterations = 10000
//	gradient_threshold = 1e-6
package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/graphene/builder"
	"github.com/katalvlaran/graphene/doping"
	"github.com/katalvlaran/graphene/relax"
	"github.com/katalvlaran/graphene/species"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidConfig is returned when a value fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownKey is returned for keys the configuration does not define.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the complete run configuration.
type Config struct {
	Sheet  Sheet  `toml:"sheet"`
	Doping Doping `toml:"doping"`
	Relax  Relax  `toml:"relax"`
}

// Sheet sizes the honeycomb lattice, in Angstrom.
type Sheet struct {
	BondDistance float64 `toml:"bond_distance" validate:"finite,gt=0"`
	Width        float64 `toml:"width" validate:"finite,gt=0"`
	Height       float64 `toml:"height" validate:"finite,gt=0"`
}

// Doping describes the requested nitrogen content. Percentages is keyed by
// species name as accepted by species.Parse.
type Doping struct {
	TotalPercentage *float64           `toml:"total_percentage" validate:"omitempty,gte=0,lte=100"`
	Percentages     map[string]float64 `toml:"percentages" validate:"dive,gte=0,lte=100"`
	Seed            int64              `toml:"seed"`
	GraphiticFill   bool               `toml:"graphitic_fill"`
}

// Relax tunes the geometry relaxation.
type Relax struct {
	Enabled           bool    `toml:"enabled"`
	InnerStiffness    float64 `toml:"inner_stiffness" validate:"finite,gt=0"`
	OuterStiffness    float64 `toml:"outer_stiffness" validate:"finite,gt=0"`
	MaxIterations     int     `toml:"max_iterations" validate:"gte=1"`
	GradientThreshold float64 `toml:"gradient_threshold" validate:"finite,gt=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", finite); err != nil {
		panic(fmt.Sprintf("config: register finite: %v", err))
	}
	return v
}

// finite rejects infinite and NaN floats.
func finite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return !math.IsInf(f.Float(), 0) && !math.IsNaN(f.Float())
	default:
		return true
	}
}

// Default returns the configuration used for absent keys.
func Default() Config {
	return Config{
		Sheet: Sheet{
			BondDistance: builder.DefaultBondDistance,
			Width:        20,
			Height:       20,
		},
		Doping: Doping{GraphiticFill: true},
		Relax: Relax{
			Enabled:           true,
			InnerStiffness:    relax.DefaultInnerStiffness,
			OuterStiffness:    relax.DefaultOuterStiffness,
			MaxIterations:     relax.DefaultMaxIterations,
			GradientThreshold: relax.DefaultGradientThreshold,
		},
	}
}

// Parse decodes a TOML document over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return finish(cfg, md)
}

// Load reads and parses the TOML file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and species names.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, describe(err))
	}
	if _, err := c.percentages(); err != nil {
		return err
	}
	return nil
}

// describe renders validator errors as "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		switch e.Tag() {
		case "finite":
			parts = append(parts, fmt.Sprintf("%s must be finite", field))
		case "gt":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "lte":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(parts, "; ")
}

func (c Config) percentages() (map[species.Species]float64, error) {
	if len(c.Doping.Percentages) == 0 {
		return nil, nil
	}
	out := make(map[species.Species]float64, len(c.Doping.Percentages))
	for name, pct := range c.Doping.Percentages {
		sp, err := species.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("config: doping.percentages: %w", err)
		}
		if _, dup := out[sp]; dup {
			return nil, fmt.Errorf("%w: species %s listed twice", ErrInvalidConfig, sp)
		}
		out[sp] = pct
	}
	return out, nil
}

// Request converts the doping section into a doping.Request.
func (c Config) Request() (doping.Request, error) {
	pcts, err := c.percentages()
	if err != nil {
		return doping.Request{}, err
	}
	req := doping.Request{Percentages: pcts}
	if c.Doping.TotalPercentage != nil {
		req.TotalPercentage = doping.Percentage(*c.Doping.TotalPercentage)
	}
	return req, nil
}
