// Package doping embeds nitrogen motifs into a graphene lattice.
//
// A Doper resolves a Request into per-species nitrogen quotas (NewPlan),
// then places species largest-footprint first: Pyridinic-N 4, 3, 2, 1 and
// finally Graphitic-N. For each species it draws candidates at random,
// without replacement, from the eligible carbons, validates them, builds the
// motif (removing atoms, converting neighbors, finding and ordering the
// boundary cycle) and retires the claimed atoms. When every species is
// placed the geometry is relaxed once.
//
// Eligibility:
//
//   - Graphitic-N retires the nitrogen and its direct neighbors.
//   - Pyridinic-N retires every atom of its boundary cycle.
//   - A pyridinic site needs its whole two-hop ball to be eligible, so two
//     motif cycles never share an atom.
//
// Randomness comes from a single *rand.Rand (WithSeed, WithRand); with the
// same seed and lattice, Apply is reproducible.
//
//	lat, _ := builder.Honeycomb(20, 20)
//	d, _ := doping.New(lat, doping.WithSeed(42), doping.WithLogger(logger))
//	rep, err := d.Apply(doping.Request{TotalPercentage: doping.Percentage(15)})
package doping
