// Package card generates the geometry of a damaged card panel.
//
// # Overview
//
// A card is a rectangle whose border has been roughed up: small triangular
// notches (blemishes) are cut into its four edges, and one corner may be torn
// off along a jagged line (a rip). Every other corner is rounded with a fixed
// radius.
//
// Generation is split in two phases:
//
//  1. Randomized: [GenerateBlemishes], [GenerateRip] and [GenerateTexture]
//     draw from an injected [Rand]. [Generate] bundles the first two into a
//     [Geometry].
//  2. Deterministic: [BuildPath] turns a geometry into a closed [Path] for a
//     given pixel size. The same inputs always produce the same path.
//
// # Reproducible Randomness
//
// All generators take a [Rand], so a seeded source gives identical cards:
//
//	g := card.Generate(card.NewRand(42), 320, 180, card.AllCorners, 0.25)
//	p := g.Path(320, 180)
//
// # Traversal
//
// Paths run clockwise from just after the top-left corner: top edge left to
// right, right edge top to bottom, bottom edge right to left, left edge bottom
// to top. Blemish positions are stored along each edge's x or y axis, so the
// bottom and left edges emit their notches in descending position order.
package card
