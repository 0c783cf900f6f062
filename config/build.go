package config

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/graphene/builder"
	"github.com/katalvlaran/graphene/core"
	"github.com/katalvlaran/graphene/doping"
	"github.com/katalvlaran/graphene/relax"
)

// Build constructs the lattice described by the sheet section and a Doper
// configured by the doping and relax sections. A nil logger means no logging.
func (c Config) Build(logger *zap.Logger) (*core.Lattice, *doping.Doper, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	lat, err := builder.Honeycomb(c.Sheet.Width, c.Sheet.Height,
		builder.WithBondDistance(c.Sheet.BondDistance))
	if err != nil {
		return nil, nil, err
	}

	opts := []doping.Option{
		doping.WithSeed(c.Doping.Seed),
		doping.WithLogger(logger),
		doping.WithGraphiticFill(c.Doping.GraphiticFill),
	}
	if c.Relax.Enabled {
		opts = append(opts, doping.WithRelaxer(relax.New(
			relax.WithStiffness(c.Relax.InnerStiffness, c.Relax.OuterStiffness),
			relax.WithMaxIterations(c.Relax.MaxIterations),
			relax.WithGradientThreshold(c.Relax.GradientThreshold),
			relax.WithLogger(logger.Named("relax")),
		)))
	} else {
		opts = append(opts, doping.WithoutRelaxation())
	}

	d, err := doping.New(lat, opts...)
	if err != nil {
		return nil, nil, err
	}
	return lat, d, nil
}
